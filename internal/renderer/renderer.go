// Package renderer runs certificate generation: it loads the template and
// font for a run, draws each participant's name, optionally converts the
// result to a signed PDF, uploads it and records the link.
package renderer

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"

	participantmodel "github.com/sunthewhat/cert-overlay-api/api/model/participantModel"
	"github.com/sunthewhat/cert-overlay-api/internal/asset"
	"github.com/sunthewhat/cert-overlay-api/internal/compositor"
	"github.com/sunthewhat/cert-overlay-api/internal/uploader"
	"golang.org/x/image/font"
)

var ErrNoParticipants = errors.New("no participants found")

const (
	StatusSuccess = "success"
	StatusSkipped = "skipped"
	StatusError   = "error"

	FormatPNG = "png"
	FormatPDF = "pdf"
)

// TextSettings describes how the name is drawn on every certificate of a run.
type TextSettings struct {
	FontSize float64
	Position image.Point
	Color    compositor.RGBColor
}

// GenerateOptions selects the participants of a run.
type GenerateOptions struct {
	Filter participantmodel.ParticipantFilter
	// Renew regenerates certificates for participants already marked certgen.
	Renew bool
}

type CertificateResult struct {
	ParticipantID string `json:"participantId"`
	Name          string `json:"name"`
	Email         string `json:"email,omitempty"`
	Link          string `json:"link,omitempty"`
	Status        string `json:"status"`
	Error         string `json:"error,omitempty"`
}

// Assets names the template, font and sample objects in the asset store.
type Assets struct {
	Template string
	Font     string
	Sample   string
}

type CertificateRenderer struct {
	assets       asset.Store
	names        Assets
	format       string
	participants participantmodel.IParticipantRepository
	uploader     uploader.Uploader
	signer       *CertificateSigner
}

func NewCertificateRenderer(
	assets asset.Store,
	names Assets,
	format string,
	participants participantmodel.IParticipantRepository,
	up uploader.Uploader,
	signer *CertificateSigner,
) *CertificateRenderer {
	if format == "" {
		format = FormatPNG
	}
	return &CertificateRenderer{
		assets:       assets,
		names:        names,
		format:       format,
		participants: participants,
		uploader:     up,
		signer:       signer,
	}
}

// run holds the decoded template and font face shared by one generation run.
type run struct {
	template image.Image
	face     font.Face
}

// fetch stages the template and font into ws and returns their bytes.
func (r *CertificateRenderer) fetch(ctx context.Context, ws *asset.Workspace) ([]byte, []byte, error) {
	templateData, err := asset.Load(ctx, r.assets, ws, r.names.Template)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", compositor.ErrTemplateLoad, err)
	}

	fontData, err := asset.Load(ctx, r.assets, ws, r.names.Font)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", compositor.ErrFontLoad, err)
	}

	return templateData, fontData, nil
}

// load fetches the template and font and decodes them for a batch run.
func (r *CertificateRenderer) load(ctx context.Context, ws *asset.Workspace, size float64) (*run, error) {
	templateData, fontData, err := r.fetch(ctx, ws)
	if err != nil {
		return nil, err
	}

	template, err := compositor.DecodeTemplate(templateData)
	if err != nil {
		return nil, err
	}
	face, err := compositor.LoadFont(fontData, size)
	if err != nil {
		return nil, err
	}

	return &run{template: template, face: face}, nil
}

// RenderSample draws name with settings, stores the result as the sample
// asset and returns its location.
func (r *CertificateRenderer) RenderSample(ctx context.Context, name string, settings TextSettings) (string, error) {
	ws, err := asset.NewWorkspace()
	if err != nil {
		return "", err
	}
	defer ws.Close()

	templateData, fontData, err := r.fetch(ctx, ws)
	if err != nil {
		return "", err
	}

	data, err := compositor.RenderPNG(templateData, fontData, compositor.RenderRequest{
		Text:     name,
		FontSize: settings.FontSize,
		Position: settings.Position,
		Color:    settings.Color,
	})
	if err != nil {
		return "", err
	}

	location, err := r.assets.Save(ctx, r.names.Sample, data, "image/png")
	if err != nil {
		return "", fmt.Errorf("failed to store sample: %w", err)
	}

	slog.Info("Sample certificate generated", "name", name, "location", location)
	return location, nil
}

// ProcessCertificates renders, uploads and records a certificate for each
// matching participant, one at a time. A failure on one participant is
// reported in its result and does not stop the run.
func (r *CertificateRenderer) ProcessCertificates(ctx context.Context, settings TextSettings, options GenerateOptions) ([]CertificateResult, error) {
	participants, err := r.participants.List(ctx, options.Filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	if len(participants) == 0 {
		return nil, ErrNoParticipants
	}

	ws, err := asset.NewWorkspace()
	if err != nil {
		return nil, err
	}
	defer ws.Close()

	current, err := r.load(ctx, ws, settings.FontSize)
	if err != nil {
		return nil, err
	}
	defer current.face.Close()

	results := make([]CertificateResult, 0, len(participants))
	for _, participant := range participants {
		if err := ctx.Err(); err != nil {
			slog.Warn("Certificate generation cancelled", "error", err, "processed", len(results))
			return results, err
		}

		results = append(results, r.processOne(ctx, current, participant, settings, options.Renew))
	}

	return results, nil
}

func (r *CertificateRenderer) processOne(ctx context.Context, current *run, participant *participantmodel.Participant, settings TextSettings, renew bool) CertificateResult {
	result := CertificateResult{ParticipantID: participant.ID, Name: participant.Name, Email: participant.Email}

	if participant.Email == "" {
		result.Status = StatusSkipped
		result.Error = "participant has no email"
		return result
	}
	if participant.CertGen && !renew {
		result.Status = StatusSkipped
		result.Link = participant.CertificateLink
		result.Error = "certificate already generated"
		return result
	}

	fail := func(stage string, err error) CertificateResult {
		slog.Error("Certificate "+stage+" failed", "error", err, "participant_id", participant.ID)
		result.Status = StatusError
		result.Error = fmt.Sprintf("%s failed: %v", stage, err)
		return result
	}

	img := compositor.Render(current.template, current.face, participant.Name, settings.Position, settings.Color)
	data, err := compositor.EncodePNG(img)
	if err != nil {
		return fail("encode", err)
	}

	file := uploader.File{
		Name:           uploader.CertificateFileName(participant.Name, FormatPNG),
		Data:           data,
		ContentType:    "image/png",
		RecipientEmail: participant.Email,
	}

	if r.format == FormatPDF {
		pdfBytes, err := ConvertToPDF(data)
		if err != nil {
			return fail("PDF conversion", err)
		}
		if pdfBytes, err = r.signer.SignPDF(pdfBytes, participant.ID, participant.Name); err != nil {
			return fail("PDF signing", err)
		}
		file.Name = uploader.CertificateFileName(participant.Name, FormatPDF)
		file.Data = pdfBytes
		file.ContentType = "application/pdf"
	}

	link, err := r.uploader.Upload(ctx, file)
	if err != nil {
		return fail("upload", err)
	}

	if err := r.participants.MarkCertificateGenerated(ctx, participant.DocID, link); err != nil {
		result.Link = link
		return fail("store update", err)
	}

	result.Status = StatusSuccess
	result.Link = link
	return result
}
