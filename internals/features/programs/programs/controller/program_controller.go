// file: internals/features/programs/programs/controller/program_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	allocationModel "skbudget_backend/internals/features/budget/allocations/model"
	dto "skbudget_backend/internals/features/programs/programs/dto"
	model "skbudget_backend/internals/features/programs/programs/model"
	helper "skbudget_backend/internals/helpers"
)

type ProgramController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewProgramController(db *gorm.DB) *ProgramController {
	return &ProgramController{
		DB:        db,
		Validator: validator.New(),
	}
}

var programSortColumns = map[string]string{
	"createdAt": "program_created_at",
	"name":      "program_name",
	"startDate": "program_start_date",
}

// ========== Create ==========
func (ctl *ProgramController) Create(c *fiber.Ctx) error {
	var req dto.CreateProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	start, err := dto.ParseDate(req.StartDate, "startDate")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	end, err := dto.ParseDate(req.EndDate, "endDate")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := dto.ValidateDateRange(start, end); err != nil {
		return helper.FromFiberError(c, err)
	}

	var dup model.Program
	if err := model.ScopeAlive(ctl.DB).
		Where("program_code = ?", strings.TrimSpace(req.Code)).
		First(&dup).Error; err == nil {
		return helper.Error(c, fiber.StatusBadRequest, "Program code already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	program := &model.Program{
		ProgramCode:      strings.TrimSpace(req.Code),
		ProgramName:      strings.TrimSpace(req.Name),
		ProgramStartDate: start,
		ProgramEndDate:   end,
		ProgramIsActive:  true,
	}
	if req.Description != nil {
		trimmed := strings.TrimSpace(*req.Description)
		if trimmed != "" {
			program.ProgramDescription = &trimmed
		}
	}
	if req.Location != nil {
		trimmed := strings.TrimSpace(*req.Location)
		if trimmed != "" {
			program.ProgramLocation = &trimmed
		}
	}
	if req.IsActive != nil {
		program.ProgramIsActive = *req.IsActive
	}

	if err := ctl.DB.Create(program).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Program created successfully", dto.FromModel(program, nil))
}

// ========== List (search/filter/sort/pagination) ==========
func (ctl *ProgramController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	query := model.ScopeAlive(ctl.DB).Model(&model.Program{})
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		query = query.Where("program_code ILIKE ? OR program_name ILIKE ?", like, like)
	}
	if isActive := helper.ParseBoolQuery(c, "isActive"); isActive != nil {
		query = query.Where("program_is_active = ?", *isActive)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	order := "program_created_at DESC"
	if col, ok := programSortColumns[strings.TrimSpace(c.Query("sortBy"))]; ok {
		direction := "ASC"
		if strings.EqualFold(c.Query("sortOrder"), "desc") {
			direction = "DESC"
		}
		order = col + " " + direction
	}

	var items []model.Program
	if err := query.Order(order).Offset(paging.Offset).Limit(paging.Limit).Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", fiber.Map{
		"programs":   dto.FromModels(items),
		"pagination": helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

// ========== Get by ID (with documents) ==========
func (ctl *ProgramController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var program model.Program
	if err := model.ScopeAlive(ctl.DB).
		First(&program, "program_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Program not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var documents []model.ProgramDocument
	if err := model.ScopeDocumentAlive(ctl.DB).
		Where("program_document_program_id = ?", id).
		Order("program_document_created_at DESC").
		Find(&documents).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", dto.FromModel(&program, documents))
}

// ========== Update ==========
func (ctl *ProgramController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdateProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var program model.Program
	if err := model.ScopeAlive(ctl.DB).
		First(&program, "program_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Program not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	if req.Code != nil && strings.TrimSpace(*req.Code) != program.ProgramCode {
		var dup model.Program
		if err := model.ScopeAlive(ctl.DB).
			Where("program_code = ? AND program_id <> ?", strings.TrimSpace(*req.Code), id).
			First(&dup).Error; err == nil {
			return helper.Error(c, fiber.StatusBadRequest, "Program code already exists")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusInternalServerError, err.Error())
		}
		program.ProgramCode = strings.TrimSpace(*req.Code)
	}
	if req.Name != nil {
		program.ProgramName = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		trimmed := strings.TrimSpace(*req.Description)
		if trimmed == "" {
			program.ProgramDescription = nil
		} else {
			program.ProgramDescription = &trimmed
		}
	}
	if req.Location != nil {
		trimmed := strings.TrimSpace(*req.Location)
		if trimmed == "" {
			program.ProgramLocation = nil
		} else {
			program.ProgramLocation = &trimmed
		}
	}

	start := program.ProgramStartDate
	end := program.ProgramEndDate
	if req.StartDate != nil {
		start, err = dto.ParseDate(req.StartDate, "startDate")
		if err != nil {
			return helper.FromFiberError(c, err)
		}
	}
	if req.EndDate != nil {
		end, err = dto.ParseDate(req.EndDate, "endDate")
		if err != nil {
			return helper.FromFiberError(c, err)
		}
	}
	if err := dto.ValidateDateRange(start, end); err != nil {
		return helper.FromFiberError(c, err)
	}
	program.ProgramStartDate = start
	program.ProgramEndDate = end

	if req.IsActive != nil {
		program.ProgramIsActive = *req.IsActive
	}

	if err := ctl.DB.Save(&program).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Program updated successfully", dto.FromModel(&program, nil))
}

// ========== Toggle status ==========
func (ctl *ProgramController) ToggleStatus(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var program model.Program
	if err := model.ScopeAlive(ctl.DB).
		First(&program, "program_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Program not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	program.ProgramIsActive = !program.ProgramIsActive
	if err := ctl.DB.Save(&program).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	message := "Program deactivated successfully"
	if program.ProgramIsActive {
		message = "Program activated successfully"
	}
	return helper.Success(c, message, dto.FromModel(&program, nil))
}

// ========== Upload document (multipart) ==========
func (ctl *ProgramController) UploadDocument(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var program model.Program
	if err := model.ScopeAlive(ctl.DB).
		First(&program, "program_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Program not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "File is required")
	}
	title := strings.TrimSpace(c.FormValue("title"))
	if title == "" {
		title = fileHeader.Filename
	}

	contentType := fileHeader.Header.Get("Content-Type")
	var fileURL string
	if helper.IsImageContentType(contentType) {
		fileURL, err = helper.UploadImageToStorage("programs", fileHeader)
		contentType = "image/webp"
	} else {
		fileURL, err = helper.UploadFileToStorage("programs", fileHeader)
	}
	if err != nil {
		log.Printf("⚠️ program document upload failed: %v", err)
		return helper.Error(c, fiber.StatusBadGateway, err.Error())
	}

	document := &model.ProgramDocument{
		ProgramDocumentProgramID: id,
		ProgramDocumentTitle:     title,
		ProgramDocumentFileURL:   fileURL,
		ProgramDocumentFileType:  contentType,
	}
	if err := ctl.DB.Create(document).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Program document uploaded successfully", dto.FromDocumentModel(document))
}

// ========== Delete document (soft) ==========
func (ctl *ProgramController) DeleteDocument(c *fiber.Ctx) error {
	programID, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	documentID, err := helper.ParseIDParam(c, "documentId")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var document model.ProgramDocument
	if err := model.ScopeDocumentAlive(ctl.DB).
		Where("program_document_program_id = ?", programID).
		First(&document, "program_document_id = ?", documentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Program document not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	now := time.Now().UTC()
	document.ProgramDocumentDeletedAt = &now
	if err := ctl.DB.Save(&document).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Program document deleted successfully", nil)
}

// ========== Delete (soft) ==========
func (ctl *ProgramController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var program model.Program
	if err := model.ScopeAlive(ctl.DB).
		First(&program, "program_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Program not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var allocations int64
	if err := ctl.DB.Model(&allocationModel.BudgetAllocation{}).
		Where("budget_allocation_program_id = ? AND budget_allocation_deleted_at IS NULL", id).
		Count(&allocations).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if allocations > 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Cannot delete program with existing budget allocations")
	}

	now := time.Now().UTC()
	program.ProgramDeletedAt = &now
	if err := ctl.DB.Save(&program).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Program deleted successfully", nil)
}
