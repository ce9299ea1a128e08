package salary

import (
	"encoding/json"
	"net/http"
	"time"

	"glamist-payroll/internal/shared/apperror"
	"glamist-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type Handler struct {
	service Service
	rdb     *redis.Client
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func NewHandlerWithRedis(service Service, rdb *redis.Client) *Handler {
	return &Handler{service: service, rdb: rdb}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) writeValidationError(c *gin.Context, err error) {
	mapped := apperror.MapValidationError(err)
	httpErr := apperror.ToHTTP(mapped)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
}

// releaseIdempotencyLock membuang lock yang dipasang middleware; dipanggil
// lewat defer di handler POST.
func (h *Handler) releaseIdempotencyLock(c *gin.Context) {
	if h.rdb == nil {
		return
	}
	lockKey, _ := c.Get("idempotency_lock_key")
	if lk, ok := lockKey.(string); ok && lk != "" {
		h.rdb.Del(c.Request.Context(), lk)
	}
}

func (h *Handler) cacheIdempotentResponse(c *gin.Context, payload any) {
	if h.rdb == nil {
		return
	}
	cacheKey, _ := c.Get("idempotency_cache_key")
	if ck, ok := cacheKey.(string); ok && ck != "" {
		if body, err := json.Marshal(payload); err == nil {
			_ = h.rdb.Set(c.Request.Context(), ck, body, 24*time.Hour).Err()
		}
	}
}

func (h *Handler) Create(c *gin.Context) {
	defer h.releaseIdempotencyLock(c)

	var req CreateSalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeValidationError(c, err)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.cacheIdempotentResponse(c, resp)
	response.WithData(c, http.StatusCreated, "Salary record added successfully", resp)
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Data(c, http.StatusOK, resp)
}

func (h *Handler) GetById(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Data(c, http.StatusOK, resp)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateSalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeValidationError(c, err)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.WithData(c, http.StatusOK, "Salary record updated successfully", resp)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Salary record deleted successfully")
}

func (h *Handler) Dashboard(c *gin.Context) {
	resp, err := h.service.Dashboard(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Data(c, http.StatusOK, resp)
}

func (h *Handler) ProcessPayments(c *gin.Context) {
	defer h.releaseIdempotencyLock(c)

	var req ProcessPaymentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeValidationError(c, err)
		return
	}

	modified, err := h.service.ProcessPayments(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	payload := gin.H{
		"message":       "Payments processed successfully",
		"modifiedCount": modified,
	}
	h.cacheIdempotentResponse(c, payload)
	response.Data(c, http.StatusOK, payload)
}
