package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"autoluxe/internal/mail"
	"autoluxe/internal/utils"
	"autoluxe/pkg/logger"
	"autoluxe/pkg/mailer"
)

type MailHandler struct {
	mock   *mail.Mock
	relay  *mailer.SMTPMailer
	logger *logger.Logger
}

func NewMailHandler(mock *mail.Mock, relay *mailer.SMTPMailer, log *logger.Logger) *MailHandler {
	return &MailHandler{
		mock:   mock,
		relay:  relay,
		logger: log,
	}
}

type SendMockInput struct {
	To      string `json:"to" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Body    string `json:"body" binding:"required"`
}

type SendCodeInput struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// SendMock queues a simulated delivery; the message surfaces on the
// mail-incoming channel after the configured delay.
func (h *MailHandler) SendMock(c *gin.Context) {
	var input SendMockInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	h.mock.Send(input.To, input.Subject, input.Body)
	utils.SuccessResponse(c, "Email queued", nil)
}

// SendCode is the real SMTP relay: generate a 6-digit verification code,
// relay it, and echo the code back so the caller can verify without any
// server-side session state.
func (h *MailHandler) SendCode(c *gin.Context) {
	var input SendCodeInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email is required"})
		return
	}

	code := utils.GenerateVerificationCode()
	name := input.Name
	if name == "" {
		name = "Client"
	}

	subject := "Your AutoLuxe verification code"
	text := fmt.Sprintf("Hello %s, your verification code is: %s", name, code)
	html := verificationEmailHTML(name, code)

	if err := h.relay.Send(input.Email, subject, text, html); err != nil {
		h.logger.WithError(err).WithField("to", input.Email).Error("failed to relay verification email")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to send email. Check server logs.",
			"error":   err.Error(),
		})
		return
	}

	h.logger.WithField("to", input.Email).Info("verification email sent")
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Email sent", "code": code})
}

func verificationEmailHTML(name, code string) string {
	return fmt.Sprintf(`
    <div style="font-family: 'Helvetica Neue', Arial, sans-serif; padding: 40px; background-color: #f9fafb;">
      <div style="max-width: 500px; margin: 0 auto; background-color: white; border-radius: 16px; overflow: hidden;">
        <div style="background-color: #0b0b0f; padding: 24px; text-align: center;">
          <h2 style="color: #8b5cf6; margin: 0; letter-spacing: 1px;">AutoLuxe</h2>
        </div>
        <div style="padding: 32px;">
          <p style="color: #374151; margin-top: 0;">Hello <strong>%s</strong>,</p>
          <p style="color: #4b5563; line-height: 1.5;">To secure your account and finish signing up, use the confirmation code below:</p>
          <div style="background-color: #f3f4f6; padding: 20px; text-align: center; border-radius: 12px; margin: 24px 0;">
            <span style="font-size: 32px; font-weight: bold; letter-spacing: 8px; color: #111827; display: block;">%s</span>
          </div>
          <p style="font-size: 13px; color: #9ca3af; margin-bottom: 0;">This code is valid for 15 minutes. If you did not request it, please ignore this email.</p>
        </div>
        <div style="background-color: #f9fafb; padding: 16px; text-align: center; border-top: 1px solid #e5e7eb;">
          <p style="font-size: 11px; color: #9ca3af; margin: 0;">&copy; %d AutoLuxe. All rights reserved.</p>
        </div>
      </div>
    </div>`, name, code, time.Now().Year())
}
