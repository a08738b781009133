package payload

type SendEmailPayload struct {
	To        []string `json:"to" validate:"required,min=1,dive,email"`
	Usernames []string `json:"usernames" validate:"required,eqfield=To"`
	Subject   string   `json:"subject"`
}

type SendEmailResult struct {
	Sent   int      `json:"sent"`
	Failed []string `json:"failed"`
}
