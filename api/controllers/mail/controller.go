package mail_controller

import "github.com/sunthewhat/cert-overlay-api/common/util"

// MailController sends registration outcome mails
type MailController struct {
	mailer util.Mailer
}

func NewMailController(mailer util.Mailer) *MailController {
	return &MailController{mailer: mailer}
}
