// file: internals/seeds/programs/seed_programs.go
package programs

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"skbudget_backend/internals/constants"
	allocationModel "skbudget_backend/internals/features/budget/allocations/model"
	budgetModel "skbudget_backend/internals/features/budget/budgets/model"
	classificationModel "skbudget_backend/internals/features/budget/classifications/model"
	objectModel "skbudget_backend/internals/features/budget/objects_of_expenditure/model"
	programModel "skbudget_backend/internals/features/programs/programs/model"
)

// Seed creates the sample program and one YOUTH allocation against the seeded
// MOOE limit. Runs after the budget seed.
func Seed(db *gorm.DB) error {
	program, err := seedProgram(db, "PRG-001", "Youth Sports Development Program")
	if err != nil {
		return err
	}
	if err := seedAllocation(db, program, decimal.NewFromInt(50_000_000)); err != nil {
		return err
	}

	log.Println("✅ program seed finished")
	return nil
}

func seedProgram(db *gorm.DB, code, name string) (*programModel.Program, error) {
	var program programModel.Program
	err := programModel.ScopeAlive(db).
		Where("program_code = ?", code).
		First(&program).Error
	if err == nil {
		return &program, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	program = programModel.Program{
		ProgramCode:     code,
		ProgramName:     name,
		ProgramIsActive: true,
	}
	if err := db.Create(&program).Error; err != nil {
		return nil, fmt.Errorf("seed program %s: %w", code, err)
	}
	log.Printf("✅ program %s seeded", code)
	return &program, nil
}

func seedAllocation(db *gorm.DB, program *programModel.Program, amount decimal.Decimal) error {
	var budget budgetModel.Budget
	if err := budgetModel.ScopeAlive(db).Order("budget_id ASC").First(&budget).Error; err != nil {
		return fmt.Errorf("seed allocation: no budget to attach to: %w", err)
	}

	var classification classificationModel.BudgetClassification
	if err := classificationModel.ScopeAlive(db).
		Where("budget_classification_code = ?", "MOOE").
		First(&classification).Error; err != nil {
		return fmt.Errorf("seed allocation: MOOE classification missing: %w", err)
	}

	var object objectModel.ObjectOfExpenditure
	if err := objectModel.ScopeAlive(db).
		Where("object_of_expenditure_code = ?", "OOE-001").
		First(&object).Error; err != nil {
		return fmt.Errorf("seed allocation: OOE-001 missing: %w", err)
	}

	var existing allocationModel.BudgetAllocation
	err := allocationModel.ScopeAlive(db).
		Where("budget_allocation_budget_id = ?", budget.BudgetID).
		Where("budget_allocation_program_id = ?", program.ProgramID).
		First(&existing).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	allocation := allocationModel.BudgetAllocation{
		BudgetAllocationBudgetID:              budget.BudgetID,
		BudgetAllocationProgramID:             program.ProgramID,
		BudgetAllocationClassificationID:      classification.BudgetClassificationID,
		BudgetAllocationCategory:              constants.CategoryYouth,
		BudgetAllocationObjectOfExpenditureID: object.ObjectOfExpenditureID,
		BudgetAllocationAllocatedAmount:       amount,
		BudgetAllocationUsedAmount:            decimal.Zero,
	}
	if err := db.Create(&allocation).Error; err != nil {
		return fmt.Errorf("seed allocation: %w", err)
	}
	log.Printf("✅ allocation for %s seeded: %s", program.ProgramCode, amount.String())
	return nil
}
