package docs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestDocsHandler(t *testing.T) {
	convey.Convey("Given a docs handler", t, func() {
		ctx := context.Background()
		mux := http.NewServeMux()

		convey.Convey("When registering the docs handler", func() {
			Register(ctx, mux)

			convey.Convey("Then it should handle /openapi.yaml route", func() {
				req := httptest.NewRequest("GET", "/openapi.yaml", http.NoBody)
				w := httptest.NewRecorder()
				mux.ServeHTTP(w, req)

				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
				convey.So(w.Header().Get("Content-Type"), convey.ShouldEqual, "application/yaml; charset=utf-8")
				convey.So(w.Body.String(), convey.ShouldContainSubstring, "/api/overview")
			})

			convey.Convey("And it should serve the docs page at /docs and /api-docs", func() {
				for _, path := range []string{"/docs", "/api-docs"} {
					req := httptest.NewRequest("GET", path, http.NoBody)
					w := httptest.NewRecorder()
					mux.ServeHTTP(w, req)

					convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
					convey.So(w.Header().Get("Content-Type"), convey.ShouldEqual, "text/html; charset=utf-8")
					convey.So(w.Body.String(), convey.ShouldContainSubstring, "redoc-container")
				}
			})
		})
	})

	convey.Convey("Given a nil mux", t, func() {
		convey.Convey("When registering the docs handler", func() {
			convey.Convey("Then it should panic", func() {
				convey.So(func() {
					Register(context.Background(), nil)
				}, convey.ShouldPanic)
			})
		})
	})
}
