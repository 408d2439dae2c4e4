// file: internals/features/procurement/requests/controller/procurement_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"skbudget_backend/internals/constants"
	allocationModel "skbudget_backend/internals/features/budget/allocations/model"
	allocationService "skbudget_backend/internals/features/budget/allocations/service"
	dto "skbudget_backend/internals/features/procurement/requests/dto"
	model "skbudget_backend/internals/features/procurement/requests/model"
	service "skbudget_backend/internals/features/procurement/requests/service"
	helper "skbudget_backend/internals/helpers"
)

type ProcurementController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewProcurementController(db *gorm.DB) *ProcurementController {
	return &ProcurementController{
		DB:        db,
		Validator: validator.New(),
	}
}

// actorName reads the authenticated user's display name from locals.
func actorName(c *fiber.Ctx) string {
	if name, ok := c.Locals("user_name").(string); ok && name != "" {
		return name
	}
	return "system"
}

// ========== Create (DRAFT) ==========
func (ctl *ProcurementController) Create(c *fiber.Ctx) error {
	var req dto.CreateProcurementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	request := &model.ProcurementRequest{
		ProcurementRequestAllocationID: req.AllocationID,
		ProcurementRequestTitle:        strings.TrimSpace(req.Title),
		ProcurementRequestAmount:       req.Amount,
		ProcurementRequestStatus:       constants.ProcurementDraft,
		ProcurementRequestRequestedBy:  actorName(c),
	}
	if req.Description != nil {
		trimmed := strings.TrimSpace(*req.Description)
		if trimmed != "" {
			request.ProcurementRequestDescription = &trimmed
		}
	}
	if req.SupplierName != nil {
		trimmed := strings.TrimSpace(*req.SupplierName)
		if trimmed != "" {
			request.ProcurementRequestSupplierName = &trimmed
		}
	}

	// lock the allocation so its delete cannot land between the remaining
	// check and the insert
	var allocation *allocationModel.BudgetAllocation
	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		allocation, err = ctl.loadAllocation(tx, req.AllocationID, true)
		if err != nil {
			return err
		}
		if err := service.ValidateAmountWithinAllocation(req.Amount, allocation.RemainingAmount()); err != nil {
			return err
		}
		return tx.Create(request).Error
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Procurement request created successfully",
		dto.FromModel(request, allocationLite(allocation), nil, nil))
}

// ========== List ==========
func (ctl *ProcurementController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	query := model.ScopeAlive(ctl.DB).Model(&model.ProcurementRequest{})
	if raw := c.Query("status"); raw != "" {
		status, err := constants.ParseProcurementStatus(raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, err.Error())
		}
		query = query.Where("procurement_request_status = ?", status)
	}
	if allocationID, err := helper.ParseIDQuery(c, "allocationId"); err != nil {
		return helper.FromFiberError(c, err)
	} else if allocationID > 0 {
		query = query.Where("procurement_request_allocation_id = ?", allocationID)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		query = query.Where("procurement_request_title ILIKE ? OR procurement_request_supplier_name ILIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var items []model.ProcurementRequest
	if err := query.Order("procurement_request_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", fiber.Map{
		"requests":   dto.FromModels(items),
		"pagination": helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

// ========== My drafts ==========
func (ctl *ProcurementController) ListDrafts(c *fiber.Ctx) error {
	var items []model.ProcurementRequest
	if err := model.ScopeAlive(ctl.DB).
		Where("procurement_request_status = ?", constants.ProcurementDraft).
		Where("procurement_request_requested_by = ?", actorName(c)).
		Order("procurement_request_created_at DESC").
		Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", dto.FromModels(items))
}

// ========== Get by ID (with trail) ==========
func (ctl *ProcurementController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	request, err := ctl.loadRequest(ctl.DB, id, false)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	allocation, err := ctl.loadAllocation(ctl.DB, request.ProcurementRequestAllocationID, false)
	if err != nil {
		// soft-deleted allocation behind a historical request; render without it
		log.Printf("⚠️ procurement %d references missing allocation %d", id, request.ProcurementRequestAllocationID)
		allocation = nil
	}

	var approvals []model.ProcurementApproval
	if err := ctl.DB.
		Where("procurement_approval_request_id = ?", id).
		Order("procurement_approval_created_at ASC").
		Find(&approvals).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var proofs []model.ProcurementProof
	if err := model.ScopeProofAlive(ctl.DB).
		Where("procurement_proof_request_id = ?", id).
		Order("procurement_proof_created_at ASC").
		Find(&proofs).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", dto.FromModel(request, allocationLite(allocation), approvals, proofs))
}

// ========== Update (drafts only) ==========
func (ctl *ProcurementController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdateProcurementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var request *model.ProcurementRequest
	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		request, err = ctl.loadRequest(tx, id, true)
		if err != nil {
			return err
		}
		if !service.EditableStatus(request.ProcurementRequestStatus) {
			return fiber.NewError(fiber.StatusBadRequest, "Only draft procurement requests can be updated")
		}

		allocationID := request.ProcurementRequestAllocationID
		if req.AllocationID != nil {
			allocationID = *req.AllocationID
		}
		amount := request.ProcurementRequestAmount
		if req.Amount != nil {
			amount = *req.Amount
		}

		allocation, err := ctl.loadAllocation(tx, allocationID, false)
		if err != nil {
			return err
		}
		if err := service.ValidateAmountWithinAllocation(amount, allocation.RemainingAmount()); err != nil {
			return err
		}

		request.ProcurementRequestAllocationID = allocationID
		request.ProcurementRequestAmount = amount
		if req.Title != nil {
			request.ProcurementRequestTitle = strings.TrimSpace(*req.Title)
		}
		if req.Description != nil {
			trimmed := strings.TrimSpace(*req.Description)
			if trimmed == "" {
				request.ProcurementRequestDescription = nil
			} else {
				request.ProcurementRequestDescription = &trimmed
			}
		}
		if req.SupplierName != nil {
			trimmed := strings.TrimSpace(*req.SupplierName)
			if trimmed == "" {
				request.ProcurementRequestSupplierName = nil
			} else {
				request.ProcurementRequestSupplierName = &trimmed
			}
		}
		return tx.Save(request).Error
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}
	return helper.Success(c, "Procurement request updated successfully", dto.FromModel(request, nil, nil, nil))
}

// ========== Submit ==========
func (ctl *ProcurementController) Submit(c *fiber.Ctx) error {
	return ctl.transition(c, constants.ProcurementSubmitted, "Procurement request submitted successfully")
}

// ========== Approve ==========
func (ctl *ProcurementController) Approve(c *fiber.Ctx) error {
	return ctl.transition(c, constants.ProcurementApproved, "Procurement request approved successfully")
}

// ========== Reject ==========
func (ctl *ProcurementController) Reject(c *fiber.Ctx) error {
	return ctl.transition(c, constants.ProcurementRejected, "Procurement request rejected")
}

// ========== Purchase (commits used amount) ==========
func (ctl *ProcurementController) Purchase(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var body dto.ProcurementDecisionRequest
	_ = c.BodyParser(&body)

	var request *model.ProcurementRequest
	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		request, err = ctl.loadRequest(tx, id, true)
		if err != nil {
			return err
		}
		if err := service.ValidateTransition(request.ProcurementRequestStatus, constants.ProcurementPurchased); err != nil {
			return err
		}

		allocation, err := ctl.loadAllocation(tx, request.ProcurementRequestAllocationID, true)
		if err != nil {
			return err
		}
		newUsed := allocation.BudgetAllocationUsedAmount.Add(request.ProcurementRequestAmount)
		if err := allocationService.ValidateUsedAmount(newUsed, allocation.BudgetAllocationAllocatedAmount); err != nil {
			return err
		}
		allocation.BudgetAllocationUsedAmount = newUsed
		if err := tx.Save(allocation).Error; err != nil {
			return err
		}

		now := time.Now().UTC()
		request.ProcurementRequestStatus = constants.ProcurementPurchased
		request.ProcurementRequestPurchasedAt = &now
		if err := tx.Save(request).Error; err != nil {
			return err
		}
		return ctl.recordApproval(tx, id, constants.ProcurementPurchased, actorName(c), body.Note)
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}
	return helper.Success(c, "Procurement request marked as purchased", dto.FromModel(request, nil, nil, nil))
}

// ========== Complete (requires proof) ==========
func (ctl *ProcurementController) Complete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var body dto.ProcurementDecisionRequest
	_ = c.BodyParser(&body)

	var request *model.ProcurementRequest
	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		request, err = ctl.loadRequest(tx, id, true)
		if err != nil {
			return err
		}
		if err := service.ValidateTransition(request.ProcurementRequestStatus, constants.ProcurementCompleted); err != nil {
			return err
		}

		var proofs int64
		if err := model.ScopeProofAlive(tx).Model(&model.ProcurementProof{}).
			Where("procurement_proof_request_id = ?", id).
			Count(&proofs).Error; err != nil {
			return err
		}
		if proofs == 0 {
			return fiber.NewError(fiber.StatusBadRequest,
				"At least one proof of purchase is required before completing")
		}

		request.ProcurementRequestStatus = constants.ProcurementCompleted
		if err := tx.Save(request).Error; err != nil {
			return err
		}
		return ctl.recordApproval(tx, id, constants.ProcurementCompleted, actorName(c), body.Note)
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}
	return helper.Success(c, "Procurement request completed successfully", dto.FromModel(request, nil, nil, nil))
}

// ========== Upload proof (multipart) ==========
func (ctl *ProcurementController) UploadProof(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	request, err := ctl.loadRequest(ctl.DB, id, false)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if request.ProcurementRequestStatus != constants.ProcurementPurchased &&
		request.ProcurementRequestStatus != constants.ProcurementCompleted {
		return helper.Error(c, fiber.StatusBadRequest, "Proofs can only be attached after purchase")
	}

	proofType := strings.ToUpper(strings.TrimSpace(c.FormValue("type")))
	if proofType == "" {
		proofType = constants.ProofTypeReceipt
	}
	if !constants.IsValidProofType(proofType) {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid proof type: "+proofType)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "File is required")
	}

	contentType := fileHeader.Header.Get("Content-Type")
	var fileURL string
	if helper.IsImageContentType(contentType) {
		fileURL, err = helper.UploadImageToStorage("procurement-proofs", fileHeader)
	} else {
		fileURL, err = helper.UploadFileToStorage("procurement-proofs", fileHeader)
	}
	if err != nil {
		log.Printf("⚠️ procurement proof upload failed: %v", err)
		return helper.Error(c, fiber.StatusBadGateway, err.Error())
	}

	proof := &model.ProcurementProof{
		ProcurementProofRequestID: id,
		ProcurementProofType:      proofType,
		ProcurementProofFileURL:   fileURL,
	}
	if err := ctl.DB.Create(proof).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Proof uploaded successfully",
		dto.FromProofModels([]model.ProcurementProof{*proof})[0])
}

// ========== Delete (soft, drafts & rejected only) ==========
func (ctl *ProcurementController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	request, err := ctl.loadRequest(ctl.DB, id, false)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if request.ProcurementRequestStatus != constants.ProcurementDraft &&
		request.ProcurementRequestStatus != constants.ProcurementRejected {
		return helper.Error(c, fiber.StatusBadRequest, "Only draft or rejected procurement requests can be deleted")
	}

	now := time.Now().UTC()
	request.ProcurementRequestDeletedAt = &now
	if err := ctl.DB.Save(request).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Procurement request deleted successfully", nil)
}

/* =========================
   Internal helpers
   ========================= */

// transition handles the simple status moves (submit/approve/reject) that do
// not touch the allocation. Submit re-checks the amount still fits.
func (ctl *ProcurementController) transition(c *fiber.Ctx, target constants.ProcurementStatus, message string) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var body dto.ProcurementDecisionRequest
	_ = c.BodyParser(&body)

	var request *model.ProcurementRequest
	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		request, err = ctl.loadRequest(tx, id, true)
		if err != nil {
			return err
		}
		if err := service.ValidateTransition(request.ProcurementRequestStatus, target); err != nil {
			return err
		}

		if target == constants.ProcurementSubmitted {
			allocation, err := ctl.loadAllocation(tx, request.ProcurementRequestAllocationID, true)
			if err != nil {
				return err
			}
			if err := service.ValidateAmountWithinAllocation(
				request.ProcurementRequestAmount, allocation.RemainingAmount()); err != nil {
				return err
			}
		}

		request.ProcurementRequestStatus = target
		if err := tx.Save(request).Error; err != nil {
			return err
		}
		return ctl.recordApproval(tx, id, target, actorName(c), body.Note)
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}
	return helper.Success(c, message, dto.FromModel(request, nil, nil, nil))
}

func (ctl *ProcurementController) recordApproval(tx *gorm.DB, requestID int64, action constants.ProcurementStatus, actor string, note *string) error {
	approval := &model.ProcurementApproval{
		ProcurementApprovalRequestID: requestID,
		ProcurementApprovalAction:    action,
		ProcurementApprovalActor:     actor,
	}
	if note != nil {
		trimmed := strings.TrimSpace(*note)
		if trimmed != "" {
			approval.ProcurementApprovalNote = &trimmed
		}
	}
	return tx.Create(approval).Error
}

func (ctl *ProcurementController) loadRequest(tx *gorm.DB, id int64, forUpdate bool) (*model.ProcurementRequest, error) {
	query := model.ScopeAlive(tx)
	if forUpdate {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var request model.ProcurementRequest
	if err := query.First(&request, "procurement_request_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Procurement request not found")
		}
		return nil, err
	}
	return &request, nil
}

func (ctl *ProcurementController) loadAllocation(tx *gorm.DB, id int64, forUpdate bool) (*allocationModel.BudgetAllocation, error) {
	query := allocationModel.ScopeAlive(tx)
	if forUpdate {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var allocation allocationModel.BudgetAllocation
	if err := query.First(&allocation, "budget_allocation_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Budget allocation not found")
		}
		return nil, err
	}
	return &allocation, nil
}

func allocationLite(a *allocationModel.BudgetAllocation) *dto.ProcurementAllocationLite {
	if a == nil {
		return nil
	}
	return &dto.ProcurementAllocationLite{
		ID:              a.BudgetAllocationID,
		BudgetID:        a.BudgetAllocationBudgetID,
		ProgramID:       a.BudgetAllocationProgramID,
		Category:        string(a.BudgetAllocationCategory),
		AllocatedAmount: a.BudgetAllocationAllocatedAmount,
		UsedAmount:      a.BudgetAllocationUsedAmount,
	}
}
