package session_test

import (
	"net/http"
	"signoff/bizerror"
	"signoff/session"
	"signoff/testinfra"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/gin-gonic/gin"
)

func buildRouter() *gin.Engine {
	router := gin.Default()
	router.Use(bizerror.ErrorHandling())
	secured := router.Group("/", session.HeaderAuthFilter())
	secured.GET("/whoami", func(c *gin.Context) {
		secCtx := session.FindSecurityContext(c)
		c.JSON(http.StatusOK, secCtx)
	})
	return router
}

func TestHeaderAuthFilter(t *testing.T) {
	RegisterTestingT(t)
	router := buildRouter()

	t.Run("should reject requests without identity headers", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/whoami", nil)
		status, body, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusUnauthorized))
		Expect(body).To(MatchJSON(`{"code":"common.unauthenticated","message":"unauthenticated"}`))

		req, _ = http.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set(session.HeaderUserID, "100")
		status, _, _ = testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusUnauthorized))
	})

	t.Run("should reject malformed user ids", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set(session.HeaderUserID, "abc")
		req.Header.Set(session.HeaderRole, session.RoleCreator)
		status, _, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusBadRequest))

		req, _ = http.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set(session.HeaderUserID, "0")
		req.Header.Set(session.HeaderRole, session.RoleCreator)
		status, _, _ = testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusBadRequest))
	})

	t.Run("should reject unknown roles", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set(session.HeaderUserID, "100")
		req.Header.Set(session.HeaderRole, "admin")
		status, body, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusForbidden))
		Expect(body).To(MatchJSON(`{"code":"security.forbidden","message":"access forbidden"}`))
	})

	t.Run("should build the security context from the headers", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set(session.HeaderUserID, "100")
		req.Header.Set(session.HeaderRole, " Approver ")
		status, body, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusOK))
		Expect(body).To(MatchJSON(`{"identity":{"id":"100","name":""},"role":"approver"}`))
	})
}

func TestSecurityContextOnGinContext(t *testing.T) {
	RegisterTestingT(t)

	t.Run("should drop anonymous contexts", func(t *testing.T) {
		c := &gin.Context{}
		session.SaveSecurityContext(c, nil)
		Expect(session.FindSecurityContext(c)).To(BeNil())
		session.SaveSecurityContext(c, &session.Context{})
		Expect(session.FindSecurityContext(c)).To(BeNil())
	})

	t.Run("should round trip an identified context", func(t *testing.T) {
		c := &gin.Context{}
		secCtx := &session.Context{Identity: session.Identity{ID: 100, Name: "ann"}, Role: session.RoleCreator}
		session.SaveSecurityContext(c, secCtx)
		Expect(session.FindSecurityContext(c)).To(Equal(secCtx))
	})
}
