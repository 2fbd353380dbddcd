package testinfra

import (
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"signoff/session"

	"github.com/fundwit/go-commons/types"
	"github.com/gin-gonic/gin"
)

// BuildSecCtx build security context
func BuildSecCtx(uid types.ID, role string) *session.Context {
	return &session.Context{Identity: session.Identity{ID: uid}, Role: role}
}

func ExecuteRequest(req *http.Request, router *gin.Engine) (int, string, error) {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	resp := w.Result()
	defer resp.Body.Close()
	bodyBytes, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, "", err
	}
	return resp.StatusCode, string(bodyBytes), nil
}
