package inquiry

import (
	"errors"
	"fmt"
	"strconv"

	"tour-contact/logger"
	inquiryService "tour-contact/services/inquiry"
	"tour-contact/types"
	inquiryTypes "tour-contact/types/inquiry"
	"tour-contact/utils"

	"github.com/gofiber/fiber/v2"
)

// InquiryController handles the contact-inquiry HTTP surface.
type InquiryController struct {
	Service *inquiryService.Service
	Logger  *logger.AsyncLogger
}

func NewInquiryController(service *inquiryService.Service, asyncLogger *logger.AsyncLogger) *InquiryController {
	return &InquiryController{
		Service: service,
		Logger:  asyncLogger,
	}
}

// List handles GET /api/contact/inquiries/
func (ic *InquiryController) List(c *fiber.Ctx) error {
	params := inquiryService.ListParams{
		Status:      c.Query("status"),
		InquiryType: c.Query("inquiry_type"),
		Page:        c.QueryInt("page", 1),
		PageSize:    c.QueryInt("page_size", 10),
	}

	page, err := ic.Service.List(params)
	if err != nil {
		return ic.respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(types.PaginatedResponse{
		Count:    page.Count,
		Next:     ic.pageURL(c, params, page, 1),
		Previous: ic.pageURL(c, params, page, -1),
		Results:  page.Results,
	})
}

// Get handles GET /api/contact/inquiries/:id/
func (ic *InquiryController) Get(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return ic.notFound(c)
	}

	resp, err := ic.Service.Get(id)
	if err != nil {
		return ic.respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

// Create handles POST /api/contact/inquiries/
func (ic *InquiryController) Create(c *fiber.Ctx) error {
	var req inquiryTypes.InquiryCreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse inquiry create request", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	resp, err := ic.Service.Create(&req)
	if err != nil {
		return ic.respondError(c, err)
	}

	if err := c.Status(fiber.StatusCreated).JSON(types.ActionResponse{
		Status:  "success",
		Message: "Your inquiry has been submitted successfully! You will receive a confirmation email shortly.",
		Data:    resp,
	}); err != nil {
		return err
	}
	ic.logRequest(c)
	return nil
}

// Update handles PUT /api/contact/inquiries/:id/
func (ic *InquiryController) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return ic.notFound(c)
	}

	var req inquiryTypes.InquiryCreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse inquiry update request", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	resp, err := ic.Service.Update(id, &req)
	if err != nil {
		return ic.respondError(c, err)
	}

	if err := c.Status(fiber.StatusOK).JSON(resp); err != nil {
		return err
	}
	ic.logRequest(c)
	return nil
}

// PartialUpdate handles PATCH /api/contact/inquiries/:id/
func (ic *InquiryController) PartialUpdate(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return ic.notFound(c)
	}

	var req inquiryTypes.InquiryUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse inquiry patch request", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	resp, err := ic.Service.PartialUpdate(id, &req)
	if err != nil {
		return ic.respondError(c, err)
	}

	if err := c.Status(fiber.StatusOK).JSON(resp); err != nil {
		return err
	}
	ic.logRequest(c)
	return nil
}

// Delete handles DELETE /api/contact/inquiries/:id/ as a soft delete.
func (ic *InquiryController) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return ic.notFound(c)
	}

	if err := ic.Service.SoftDelete(id); err != nil {
		return ic.respondError(c, err)
	}

	if err := c.Status(fiber.StatusOK).JSON(types.ActionResponse{
		Status:  "success",
		Message: "Inquiry deleted successfully",
	}); err != nil {
		return err
	}
	ic.logRequest(c)
	return nil
}

// UpdateStatus handles POST /api/contact/inquiries/:id/update-status/
func (ic *InquiryController) UpdateStatus(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return ic.notFound(c)
	}

	var req inquiryTypes.StatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse status update request", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	resp, message, err := ic.Service.UpdateStatus(id, &req)
	if err != nil {
		return ic.respondError(c, err)
	}

	if err := c.Status(fiber.StatusOK).JSON(types.ActionResponse{
		Status:  "success",
		Message: message,
		Data:    resp,
	}); err != nil {
		return err
	}
	ic.logRequest(c)
	return nil
}

// Statistics handles GET /api/contact/inquiries/statistics/
func (ic *InquiryController) Statistics(c *fiber.Ctx) error {
	stats, err := ic.Service.Statistics()
	if err != nil {
		return ic.respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(stats)
}

// Recent handles GET /api/contact/inquiries/recent/
func (ic *InquiryController) Recent(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", inquiryService.DefaultRecentLimit)

	responses, err := ic.Service.Recent(limit)
	if err != nil {
		return ic.respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(types.CollectionResponse{
		Status: "success",
		Count:  len(responses),
		Data:   responses,
	})
}

func (ic *InquiryController) respondError(c *fiber.Ctx, err error) error {
	if ve, ok := inquiryService.AsValidationError(err); ok {
		return c.Status(fiber.StatusBadRequest).JSON(types.ValidationErrorResponse{
			Status:  "error",
			Message: "Validation failed",
			Errors:  ve.Fields,
		})
	}
	if errors.Is(err, inquiryService.ErrNotFound) {
		return ic.notFound(c)
	}

	logger.Error("Inquiry operation failed", err)
	return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
		Status:  fiber.StatusInternalServerError,
		Message: "Internal server error",
	})
}

func (ic *InquiryController) notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
		Status:  fiber.StatusNotFound,
		Message: "Inquiry not found",
	})
}

func (ic *InquiryController) logRequest(c *fiber.Ctx) {
	if ic.Logger != nil {
		ic.Logger.Log(utils.CreateSanitizedLogEntry(c))
	}
}

// pageURL builds the absolute next/previous URL for the list
// envelope; nil when there is no such page.
func (ic *InquiryController) pageURL(c *fiber.Ctx, params inquiryService.ListParams, page *inquiryService.ListPage, delta int) *string {
	lastPage := int((page.Count + int64(page.PageSize) - 1) / int64(page.PageSize))

	target := page.Page + delta
	if delta > 0 && target > lastPage {
		return nil
	}
	if delta < 0 && target > lastPage {
		// Requested page is past the data; point back at the last real page.
		target = lastPage
	}
	if target < 1 {
		return nil
	}

	url := fmt.Sprintf("%s%s?page=%d&page_size=%d", c.BaseURL(), c.Path(), target, page.PageSize)
	if params.Status != "" {
		url += "&status=" + params.Status
	}
	if params.InquiryType != "" {
		url += "&inquiry_type=" + params.InquiryType
	}
	return &url
}

func parseID(c *fiber.Ctx) (uint, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
