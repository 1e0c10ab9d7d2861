package handlers

import (
	"elite-dashboard/internal/testutil"
	"elite-dashboard/internal/version"
	"net/http"
	"testing"
)

func TestHandlerHealth(t *testing.T) {
	tc := testutil.NewTestContext(t)
	defer tc.Finish()

	tc.CallHandler(HandlerHealth)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertContentType(t, "application/json")
	tc.AssertJSONField(t, "status", "OK")
	tc.AssertJSONField(t, "version", version.GetVersion())
}
