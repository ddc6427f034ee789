package leads

import (
	"io"
	"net/http"

	"bestdeal-service/internal/domain/lead"
	"bestdeal-service/internal/pkg/response"
	"bestdeal-service/internal/service/email"
	service "bestdeal-service/internal/service/leads"

	"github.com/gin-gonic/gin"
)

type LeadHandler struct {
	leadService *service.LeadService
}

func NewLeadHandler(leadService *service.LeadService) *LeadHandler {
	return &LeadHandler{
		leadService: leadService,
	}
}

func (h *LeadHandler) Message(c *gin.Context) {
	var p lead.MessageLead
	if err := c.ShouldBindJSON(&p); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}
	h.submit(c, &p)
}

func (h *LeadHandler) Offer(c *gin.Context) {
	var p lead.OfferLead
	if err := c.ShouldBindJSON(&p); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}
	h.submit(c, &p)
}

func (h *LeadHandler) Apply(c *gin.Context) {
	var p lead.ApplyOnline
	if err := c.ShouldBindJSON(&p); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}
	h.submit(c, &p)
}

func (h *LeadHandler) CarFinder(c *gin.Context) {
	var p lead.CarFinder
	if err := c.ShouldBindJSON(&p); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}
	h.submit(c, &p)
}

func (h *LeadHandler) TestDrive(c *gin.Context) {
	var p lead.TestDrive
	if err := c.ShouldBindJSON(&p); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}
	h.submit(c, &p)
}

func (h *LeadHandler) Referral(c *gin.Context) {
	var p lead.Referral
	if err := c.ShouldBindJSON(&p); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}
	h.submit(c, &p)
}

func (h *LeadHandler) Contact(c *gin.Context) {
	var p lead.ContactUs
	if err := c.ShouldBindJSON(&p); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}
	h.submit(c, &p)
}

// Feedback reports whether the submission is public; a rating of 5 is
// acknowledged without persistence or notification.
func (h *LeadHandler) Feedback(c *gin.Context) {
	var p lead.Feedback
	if err := c.ShouldBindJSON(&p); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	public, err := h.leadService.SubmitFeedback(c.Request.Context(), &p)
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "public": public})
}

// SellTrade accepts a multipart form with an optional "files" upload array.
func (h *LeadHandler) SellTrade(c *gin.Context) {
	var p lead.SellTrade
	if err := c.ShouldBind(&p); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	uploads, err := readUploads(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "failed to read upload", err)
		return
	}

	if err := h.leadService.SubmitSellTrade(c.Request.Context(), &p, uploads); err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "received"})
}

func (h *LeadHandler) submit(c *gin.Context, p lead.Payload) {
	if err := h.leadService.Submit(c.Request.Context(), p); err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func readUploads(c *gin.Context) ([]email.Attachment, error) {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		// No multipart body means no files; the form fields already bound.
		return nil, nil
	}

	uploads := make([]email.Attachment, 0, len(form.File["files"]))
	for _, fh := range form.File["files"] {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		content, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, email.Attachment{
			Filename: fh.Filename,
			Content:  content,
			MimeType: fh.Header.Get("Content-Type"),
		})
	}
	return uploads, nil
}
