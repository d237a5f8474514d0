package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hirepath/hirepath/internal/auth"
	"github.com/hirepath/hirepath/internal/models"
	"github.com/hirepath/hirepath/internal/policy"
	"github.com/hirepath/hirepath/internal/store"
	"github.com/hirepath/hirepath/internal/validation"
)

type PostingHandler struct {
	Store *store.Store
}

func NewPostingHandler(s *store.Store) *PostingHandler { return &PostingHandler{Store: s} }

// ListMine: GET /postings — the provider's own postings.
func (h *PostingHandler) ListMine(c *gin.Context) {
	uid, _ := auth.UserIDFromContext(c.Request.Context())
	postings, err := h.Store.ListJobPostings(uid)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": postings, "total": len(postings)})
}

// Create: POST /postings.
func (h *PostingHandler) Create(c *gin.Context) {
	var req struct {
		Title        string `json:"title"`
		Description  string `json:"description"`
		Requirements string `json:"requirements"`
		Deadline     string `json:"deadline"` // YYYY-MM-DD, optional
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	deadline, ok := parseDate(req.Deadline)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "deadline must be YYYY-MM-DD"})
		return
	}
	if errs := validation.JobPosting(req.Title, req.Description, deadline); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}
	uid, _ := auth.UserIDFromContext(c.Request.Context())
	posting, err := h.Store.AddJobPosting(uid, req.Title, req.Description, req.Requirements, deadline)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, posting)
}

// Update: PUT /postings/:id — partial update, owner only.
func (h *PostingHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req struct {
		Title        *string `json:"title"`
		Description  *string `json:"description"`
		Requirements *string `json:"requirements"`
		Deadline     *string `json:"deadline"`
		Status       *string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	uid, _ := auth.UserIDFromContext(c.Request.Context())
	posting, err := h.Store.GetJobPosting(id)
	if err != nil {
		storeError(c, err)
		return
	}
	if !policy.Owns(uid, *posting) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	upd := store.JobPostingUpdate{
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,
		Status:       req.Status,
	}
	if req.Deadline != nil {
		d, ok := parseDate(*req.Deadline)
		if !ok || d == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "deadline must be YYYY-MM-DD"})
			return
		}
		upd.Deadline = d
	}
	updated, err := h.Store.UpdateJobPosting(id, upd)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete: DELETE /postings/:id, owner only.
func (h *PostingHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	uid, _ := auth.UserIDFromContext(c.Request.Context())
	posting, err := h.Store.GetJobPosting(id)
	if err != nil {
		storeError(c, err)
		return
	}
	if !policy.Owns(uid, *posting) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	if err := h.Store.DeleteJobPosting(id); err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "job posting deleted"})
}

// Board: GET /jobs — the public board. ?q= searches title/description,
// ?active_only= filters (defaults to true, matching the browse UI).
func (h *PostingHandler) Board(c *gin.Context) {
	var (
		postings []models.JobPosting
		err      error
	)
	if q := c.Query("q"); q != "" {
		postings, err = h.Store.SearchJobPostings(q)
	} else {
		activeOnly := true
		if v := c.Query("active_only"); v != "" {
			if b, perr := strconv.ParseBool(v); perr == nil {
				activeOnly = b
			}
		}
		postings, err = h.Store.ListAllJobPostings(activeOnly)
	}
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": postings, "total": len(postings)})
}

// Apply: POST /jobs/:id/apply — the seeker's apply workflow.
func (h *PostingHandler) Apply(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req struct {
		CoverLetter string `json:"cover_letter"`
	}
	// Body is optional; a bare POST means no cover letter.
	_ = c.ShouldBindJSON(&req)
	uid, _ := auth.UserIDFromContext(c.Request.Context())
	app, err := h.Store.ApplyToJob(uid, id, req.CoverLetter)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

// Applicants: GET /postings/:id/applicants, owner only.
func (h *PostingHandler) Applicants(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	uid, _ := auth.UserIDFromContext(c.Request.Context())
	posting, err := h.Store.GetJobPosting(id)
	if err != nil {
		storeError(c, err)
		return
	}
	if !policy.Owns(uid, *posting) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	applicants, err := h.Store.ListApplicantsForPosting(id)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": applicants, "total": len(applicants)})
}

// AllApplicants: GET /applicants — every applicant across the provider's
// postings, flattened.
func (h *PostingHandler) AllApplicants(c *gin.Context) {
	uid, _ := auth.UserIDFromContext(c.Request.Context())
	applicants, err := h.Store.ListApplicantsForProvider(uid)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": applicants, "total": len(applicants)})
}
