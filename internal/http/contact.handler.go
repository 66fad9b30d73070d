package http

import (
	"net/http"

	"github.com/AlumniUPNFM/alumni-upnfm-sub000/internal/appcontext"
	"github.com/AlumniUPNFM/alumni-upnfm-sub000/internal/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type contactRequest struct {
	Nombre  string `json:"nombre"`
	Email   string `json:"email"`
	Asunto  string `json:"asunto"`
	Mensaje string `json:"mensaje"`
}

func validateContact(req contactRequest) string {
	switch {
	case req.Nombre == "":
		return "El nombre es obligatorio"
	case req.Email == "":
		return "El correo es obligatorio"
	case req.Asunto == "":
		return "El asunto es obligatorio"
	case req.Mensaje == "":
		return "El mensaje es obligatorio"
	}
	return ""
}

// SendContactMessage relays a contact-form submission to the platform inbox.
func SendContactMessage(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request contactRequest
		if err := c.BindJSON(&request); err != nil {
			ctx.Logger.Error("Failed to bind request", zap.Error(err))
			respondError(c, http.StatusBadRequest, "Datos inválidos")
			return
		}

		if msg := validateContact(request); msg != "" {
			respondError(c, http.StatusBadRequest, msg)
			return
		}

		if err := services.SendContactEmail(ctx.ContactEmail, request.Nombre, request.Email, request.Asunto, request.Mensaje); err != nil {
			ctx.Logger.Error("Failed to send contact email", zap.Error(err))
			respondError(c, http.StatusInternalServerError, err.Error())
			return
		}

		respondOK(c, nil, "Mensaje enviado")
	}
}
