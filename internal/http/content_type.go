package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/blakestevenson/mediacatalog/internal/httputil"
	"github.com/blakestevenson/mediacatalog/internal/problem"
	"go.uber.org/zap"
)

// ContentTypeGate rejects POST, PUT and PATCH requests whose media type is
// not in allowed. Parameters such as charset are ignored. A missing header
// counts as the empty media type and is rejected. Other methods pass.
func ContentTypeGate(allowed []string, logger *zap.Logger) func(next http.Handler) http.Handler {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, ct := range allowed {
		allowedSet[ct] = struct{}{}
	}
	detail := "Content-Type must be one of: " + strings.Join(allowed, ", ")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isMutating(r.Method) {
				next.ServeHTTP(w, r)
				return
			}

			mediaType := normalizeContentType(r.Header.Get("Content-Type"))
			if _, ok := allowedSet[mediaType]; ok {
				next.ServeHTTP(w, r)
				return
			}

			doc := problem.Build(http.StatusUnsupportedMediaType, problem.WithDetail(detail))
			httputil.RespondProblem(w, r, logger, doc, fmt.Errorf("unsupported content type %q", mediaType))
		})
	}
}

func normalizeContentType(header string) string {
	mediaType, _, _ := strings.Cut(header, ";")
	return strings.TrimSpace(mediaType)
}
