package payload

type MarkAttendancePayload struct {
	QrResult          string `json:"qrResult" validate:"required"`
	QrResultTimestamp string `json:"qrResultTimestamp" validate:"required"`
	UserName          string `json:"userName" validate:"required"`
}

type UploadImagePayload struct {
	ImageUrl string `json:"imageUrl" validate:"required,url|datauri"`
}
