package utils

import (
	"fmt"

	"github.com/AlumniUPNFM/alumni-upnfm-sub000/internal/appcontext"
	"github.com/AlumniUPNFM/alumni-upnfm-sub000/internal/entity"
)

// Documents indexed in the "ofertas" Meilisearch index. Jobs and trainings
// share one index so a single search covers both; ids are prefixed with the
// type to keep them unique across tables.

func TrabajoToDocument(trabajo *entity.Trabajo) map[string]interface{} {
	doc := map[string]interface{}{
		"id":          fmt.Sprintf("trabajo-%d", trabajo.ID),
		"resource_id": trabajo.ID,
		"tipo":        "trabajo",
		"name":        trabajo.Puesto,
		"description": trabajo.Description,
		"ubicacion":   trabajo.Ubicacion,
		"degree_id":   trabajo.TitulacionID,
	}
	if trabajo.Empresa != nil {
		doc["empresa"] = trabajo.Empresa.Name
	}
	return doc
}

func FormacionToDocument(formacion *entity.Formacion) map[string]interface{} {
	return map[string]interface{}{
		"id":          fmt.Sprintf("formacion-%d", formacion.ID),
		"resource_id": formacion.ID,
		"tipo":        "formacion",
		"name":        formacion.Name,
		"description": formacion.Descripcion,
		"institucion": formacion.Institucion,
		"degree_id":   formacion.TitulacionID,
	}
}

func IndexDocument(ctx *appcontext.Context, document map[string]interface{}) error {
	if ctx.MeilisearchClient == nil {
		return nil
	}
	_, err := ctx.MeilisearchClient.Index("ofertas").AddDocuments([]map[string]interface{}{document})
	if err != nil {
		return fmt.Errorf("failed to index document: %w", err)
	}
	return nil
}

func RemoveDocument(ctx *appcontext.Context, id string) error {
	if ctx.MeilisearchClient == nil {
		return nil
	}
	_, err := ctx.MeilisearchClient.Index("ofertas").DeleteDocument(id)
	if err != nil {
		return fmt.Errorf("failed to remove document: %w", err)
	}
	return nil
}
