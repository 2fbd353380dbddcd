package state_test

import (
	"signoff/domain/state"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("StateMachine", func() {
	var (
		stateMachine *state.StateMachine
	)

	BeforeEach(func() {
		//           pending        approved      rejected
		// draft     V (submit)     -             -
		// pending   -              V (approve)   V (reject)
		// rejected  V (submit)     -             -
		stateMachine = state.NewStateMachine(
			[]state.State{
				{Name: "draft", Category: state.Editable},
				{Name: "pending", Category: state.InReview},
				{Name: "approved", Category: state.Settled},
				{Name: "rejected", Category: state.Editable},
			},
			[]state.Transition{
				{Name: "submit", From: state.State{Name: "draft", Category: state.Editable}, To: state.State{Name: "pending", Category: state.InReview}},
				{Name: "submit", From: state.State{Name: "rejected", Category: state.Editable}, To: state.State{Name: "pending", Category: state.InReview}},
				{Name: "approve", From: state.State{Name: "pending", Category: state.InReview}, To: state.State{Name: "approved", Category: state.Settled}},
				{Name: "reject", From: state.State{Name: "pending", Category: state.InReview}, To: state.State{Name: "rejected", Category: state.Editable}},
			})
	})

	Describe("AvailableTransitions", func() {
		It("should compute transitions by from state", func() {
			Ω(len(stateMachine.AvailableTransitions("draft", ""))).Should(Equal(1))
			Ω(len(stateMachine.AvailableTransitions("pending", ""))).Should(Equal(2))
			Ω(len(stateMachine.AvailableTransitions("rejected", ""))).Should(Equal(1))
			Ω(len(stateMachine.AvailableTransitions("approved", ""))).Should(Equal(0))
			Ω(len(stateMachine.AvailableTransitions("UNKNOWN", ""))).Should(Equal(0))
		})

		It("should compute transitions by from and to state", func() {
			Ω(len(stateMachine.AvailableTransitions("draft", "pending"))).Should(Equal(1))
			Ω(len(stateMachine.AvailableTransitions("rejected", "pending"))).Should(Equal(1))
			Ω(len(stateMachine.AvailableTransitions("pending", "approved"))).Should(Equal(1))
			Ω(len(stateMachine.AvailableTransitions("pending", "rejected"))).Should(Equal(1))

			// approved is terminal
			Ω(len(stateMachine.AvailableTransitions("approved", "pending"))).Should(Equal(0))
			Ω(len(stateMachine.AvailableTransitions("approved", "draft"))).Should(Equal(0))
			// a draft may not skip review
			Ω(len(stateMachine.AvailableTransitions("draft", "approved"))).Should(Equal(0))
		})

		It("should compute transitions by to state only", func() {
			Ω(len(stateMachine.AvailableTransitions("", "pending"))).Should(Equal(2))
		})
	})

	Describe("FindState", func() {
		It("should find states by name", func() {
			s, found := stateMachine.FindState("pending")
			Expect(found).To(BeTrue())
			Expect(s).To(Equal(state.State{Name: "pending", Category: state.InReview}))

			_, found = stateMachine.FindState("UNKNOWN")
			Expect(found).To(BeFalse())
		})
	})
})
