package services

import (
	"fmt"
	"os"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

func fromAddress() *mail.Email {
	return mail.NewEmail("Alumni UPNFM", os.Getenv("MAIL_FROM"))
}

// SendContactEmail relays a contact-form submission to the platform inbox.
func SendContactEmail(toEmail, nombre, senderEmail, asunto, mensaje string) error {
	from := fromAddress()
	subject := fmt.Sprintf("Contacto: %s", asunto)
	to := mail.NewEmail("Alumni UPNFM", toEmail)

	htmlContent := fmt.Sprintf(`
        <div style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
			<h2 style="color: #2c3e50;">Nuevo mensaje de contacto</h2>
			<p><strong>Nombre:</strong> %s</p>
			<p><strong>Correo:</strong> %s</p>
			<p><strong>Asunto:</strong> %s</p>
			<p style="background-color: #f4f4f4; border-radius: 8px; padding: 15px;">%s</p>
		</div>
        `, nombre, senderEmail, asunto, mensaje)

	plainTextContent := fmt.Sprintf("Nuevo mensaje de %s (%s): %s", nombre, senderEmail, mensaje)

	message := mail.NewSingleEmail(from, subject, to, plainTextContent, htmlContent)
	client := sendgrid.NewSendClient(os.Getenv("SENDGRID_API_KEY"))
	_, err := client.Send(message)
	if err != nil {
		return err
	}
	return nil
}

// SendTempPasswordEmail mails the temporary password generated by the
// forgot-password flow. The account is flagged so the next login forces a
// password change.
func SendTempPasswordEmail(toEmail, nombre, tempPassword, loginURL string) error {
	from := fromAddress()
	subject := "Restablecimiento de contraseña - Alumni UPNFM"
	to := mail.NewEmail(nombre, toEmail)

	htmlContent := fmt.Sprintf(`
        <div style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; background-color: #f4f4f4; text-align: center;">
			<div style="background-color: #ffffff; border-radius: 8px; padding: 30px; box-shadow: 0 4px 6px rgba(0, 0, 0, 0.1); display: inline-block; text-align: center;">
				<h1 style="color: #2c3e50; margin-bottom: 20px;">Contraseña temporal</h1>
				<p>Hola %s,</p>
				<p>Hemos generado una contraseña temporal para tu cuenta:</p>
				<p style="font-size: 20px; font-weight: bold; letter-spacing: 2px; background-color: #f4f4f4; border-radius: 4px; padding: 10px;">%s</p>
				<p>Al iniciar sesión se te pedirá elegir una contraseña nueva.</p>
				<a href="%s" style="display: inline-block; background-color: #3498db; color: #ffffff; text-decoration: none; padding: 12px 24px; border-radius: 4px; font-weight: bold; margin-top: 20px;">Iniciar sesión</a>
				<p>Si no solicitaste este cambio, contacta con el equipo de soporte.</p>
			</div>
		</div>
        `, nombre, tempPassword, loginURL)

	plainTextContent := fmt.Sprintf("Hola %s, tu contraseña temporal es: %s. Al iniciar sesión se te pedirá cambiarla.", nombre, tempPassword)

	message := mail.NewSingleEmail(from, subject, to, plainTextContent, htmlContent)
	client := sendgrid.NewSendClient(os.Getenv("SENDGRID_API_KEY"))
	_, err := client.Send(message)
	if err != nil {
		return err
	}
	return nil
}
