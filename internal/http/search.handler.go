package http

import (
	"net/http"
	"strings"

	"github.com/AlumniUPNFM/alumni-upnfm-sub000/internal/appcontext"
	"github.com/gin-gonic/gin"
	"github.com/meilisearch/meilisearch-go"
	"go.uber.org/zap"
)

// SearchOfertas searches jobs and trainings in one query. A "tr:" or "fo:"
// prefix narrows the search to one type.
func SearchOfertas(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Query("q")
		if query == "" {
			respondError(c, http.StatusBadRequest, "Falta el término de búsqueda")
			return
		}

		var typeFilter string
		var actualQuery string

		switch {
		case strings.HasPrefix(query, "tr:"):
			typeFilter = "tipo = trabajo"
			actualQuery = strings.TrimPrefix(query, "tr:")
		case strings.HasPrefix(query, "fo:"):
			typeFilter = "tipo = formacion"
			actualQuery = strings.TrimPrefix(query, "fo:")
		default:
			typeFilter = "tipo IN [trabajo, formacion]"
			actualQuery = query
		}

		searchParams := &meilisearch.SearchRequest{
			Query:  actualQuery,
			Filter: typeFilter,
		}

		searchResult, err := ctx.MeilisearchClient.Index("ofertas").Search(actualQuery, searchParams)
		if err != nil {
			ctx.Logger.Error("Failed to perform search", zap.Error(err))
			respondError(c, http.StatusInternalServerError, err.Error())
			return
		}

		respondOK(c, gin.H{"results": searchResult.Hits}, "")
	}
}
