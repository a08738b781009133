package mail_controller

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/cert-overlay-api/common/util"
	"github.com/sunthewhat/cert-overlay-api/type/payload"
	"github.com/sunthewhat/cert-overlay-api/type/response"
)

func (ctrl *MailController) SendSelectedEmail(c *fiber.Ctx) error {
	return ctrl.sendAll(c, util.SelectedSubject, util.SelectedMail)
}

func (ctrl *MailController) SendNotSelectedEmail(c *fiber.Ctx) error {
	return ctrl.sendAll(c, util.NotSelectedSubject, util.NotSelectedMail)
}

// sendAll mails render(usernames[i]) to to[i] for every recipient, one at a time.
func (ctrl *MailController) sendAll(c *fiber.Ctx, defaultSubject string, render func(username string) string) error {
	body := new(payload.SendEmailPayload)

	if err := c.BodyParser(body); err != nil {
		return response.SendFailed(c, "Invalid data")
	}

	if err := util.ValidateStruct(body); err != nil {
		errors := util.GetValidationErrors(err)
		return response.SendFailed(c, errors[0])
	}

	subject := body.Subject
	if subject == "" {
		subject = defaultSubject
	}

	result := payload.SendEmailResult{Failed: []string{}}
	for i, to := range body.To {
		if err := ctrl.mailer.Send(to, subject, render(body.Usernames[i])); err != nil {
			slog.Error("Mail send failed", "error", err, "recipient", to)
			result.Failed = append(result.Failed, to)
			continue
		}
		result.Sent++
	}

	if result.Sent == 0 {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to send emails",
			"data":    result,
		})
	}

	slog.Info("Mails sent", "subject", subject, "sent", result.Sent, "failed", len(result.Failed))
	return response.SendSuccess(c, "Emails sent successfully", result)
}
