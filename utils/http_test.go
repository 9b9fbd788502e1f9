package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitWriteJSONWithStatus(t *testing.T) {

	Convey("Writes message resource with supplied status", t, func() {
		req := httptest.NewRequest("GET", "/test", nil)
		w := httptest.NewRecorder()

		WriteJSONWithStatus(w, req, NewMessageResponse("refund not found"), http.StatusNotFound)

		So(w.Code, ShouldEqual, http.StatusNotFound)
		So(w.Header().Get("Content-Type"), ShouldEqual, "application/json")
		So(w.Body.String(), ShouldContainSubstring, "refund not found")
	})
}
