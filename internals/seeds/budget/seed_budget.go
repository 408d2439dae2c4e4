// file: internals/seeds/budget/seed_budget.go
package budget

import (
	"fmt"
	"log"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"skbudget_backend/internals/constants"
	budgetModel "skbudget_backend/internals/features/budget/budgets/model"
	limitModel "skbudget_backend/internals/features/budget/classification_limits/model"
	classificationModel "skbudget_backend/internals/features/budget/classifications/model"
	fiscalYearModel "skbudget_backend/internals/features/budget/fiscal_years/model"
	objectModel "skbudget_backend/internals/features/budget/objects_of_expenditure/model"
)

// Seed provisions the 2025 fiscal year with the standard 40/60 split, the
// base classifications and a planned limit per classification+category.
// Idempotent: skips anything that already exists.
func Seed(db *gorm.DB) error {
	fy, err := seedFiscalYear(db, 2025)
	if err != nil {
		return err
	}

	budget, err := seedBudget(db, fy,
		decimal.NewFromInt(1_000_000_000),
		decimal.NewFromInt(400_000_000),
		decimal.NewFromInt(600_000_000),
	)
	if err != nil {
		return err
	}

	mooe, err := seedClassification(db, "MOOE", "Maintenance and Other Operating Expenses",
		[]string{string(constants.CategoryAdministrative), string(constants.CategoryYouth)})
	if err != nil {
		return err
	}
	ps, err := seedClassification(db, "PS", "Personal Services",
		[]string{string(constants.CategoryAdministrative)})
	if err != nil {
		return err
	}

	if err := seedObject(db, "OOE-001", "Office Supplies and Materials"); err != nil {
		return err
	}

	limits := []struct {
		classification *classificationModel.BudgetClassification
		category       constants.BudgetCategory
		amount         decimal.Decimal
	}{
		{mooe, constants.CategoryYouth, decimal.NewFromInt(600_000_000)},
		{mooe, constants.CategoryAdministrative, decimal.NewFromInt(250_000_000)},
		{ps, constants.CategoryAdministrative, decimal.NewFromInt(150_000_000)},
	}
	for _, l := range limits {
		if err := seedLimit(db, budget, l.classification, l.category, l.amount); err != nil {
			return err
		}
	}

	log.Println("✅ budget seed finished")
	return nil
}

func seedFiscalYear(db *gorm.DB, year int) (*fiscalYearModel.FiscalYear, error) {
	var fy fiscalYearModel.FiscalYear
	err := fiscalYearModel.ScopeAlive(db).
		Where("fiscal_year_year = ?", year).
		First(&fy).Error
	if err == nil {
		return &fy, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	fy = fiscalYearModel.FiscalYear{
		FiscalYearYear:     year,
		FiscalYearIsActive: true,
	}
	if err := db.Create(&fy).Error; err != nil {
		return nil, fmt.Errorf("seed fiscal year %d: %w", year, err)
	}
	log.Printf("✅ fiscal year %d seeded (active)", year)
	return &fy, nil
}

func seedBudget(db *gorm.DB, fy *fiscalYearModel.FiscalYear, total, administrative, youth decimal.Decimal) (*budgetModel.Budget, error) {
	var budget budgetModel.Budget
	err := budgetModel.ScopeAlive(db).
		Scopes(budgetModel.ScopeByFiscalYear(fy.FiscalYearID)).
		First(&budget).Error
	if err == nil {
		return &budget, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	budget = budgetModel.Budget{
		BudgetFiscalYearID:         fy.FiscalYearID,
		BudgetTotalAmount:          total,
		BudgetAdministrativeAmount: administrative,
		BudgetYouthAmount:          youth,
	}
	if err := db.Create(&budget).Error; err != nil {
		return nil, fmt.Errorf("seed budget: %w", err)
	}
	log.Printf("✅ budget for %d seeded: total %s", fy.FiscalYearYear, total.String())
	return &budget, nil
}

func seedClassification(db *gorm.DB, code, name string, categories []string) (*classificationModel.BudgetClassification, error) {
	var classification classificationModel.BudgetClassification
	err := classificationModel.ScopeAlive(db).
		Where("budget_classification_code = ?", code).
		First(&classification).Error
	if err == nil {
		return &classification, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	classification = classificationModel.BudgetClassification{
		BudgetClassificationCode:              code,
		BudgetClassificationName:              name,
		BudgetClassificationAllowedCategories: pq.StringArray(categories),
	}
	if err := db.Create(&classification).Error; err != nil {
		return nil, fmt.Errorf("seed classification %s: %w", code, err)
	}
	log.Printf("✅ classification %s seeded", code)
	return &classification, nil
}

func seedObject(db *gorm.DB, code, name string) error {
	var object objectModel.ObjectOfExpenditure
	err := objectModel.ScopeAlive(db).
		Where("object_of_expenditure_code = ?", code).
		First(&object).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	object = objectModel.ObjectOfExpenditure{
		ObjectOfExpenditureCode: code,
		ObjectOfExpenditureName: name,
	}
	if err := db.Create(&object).Error; err != nil {
		return fmt.Errorf("seed object of expenditure %s: %w", code, err)
	}
	log.Printf("✅ object of expenditure %s seeded", code)
	return nil
}

func seedLimit(db *gorm.DB, budget *budgetModel.Budget, classification *classificationModel.BudgetClassification, category constants.BudgetCategory, amount decimal.Decimal) error {
	var limit limitModel.BudgetClassificationLimit
	err := limitModel.ScopeAlive(db).
		Where("budget_classification_limit_budget_id = ?", budget.BudgetID).
		Where("budget_classification_limit_classification_id = ?", classification.BudgetClassificationID).
		Where("budget_classification_limit_category = ?", category).
		First(&limit).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	limit = limitModel.BudgetClassificationLimit{
		BudgetClassificationLimitBudgetID:         budget.BudgetID,
		BudgetClassificationLimitClassificationID: classification.BudgetClassificationID,
		BudgetClassificationLimitCategory:         category,
		BudgetClassificationLimitAmount:           amount,
	}
	if err := limit.SetClassificationSnapshot(limitModel.ClassificationSnapshotPayload{
		ID:   classification.BudgetClassificationID,
		Code: classification.BudgetClassificationCode,
		Name: classification.BudgetClassificationName,
	}); err != nil {
		return err
	}
	if err := db.Create(&limit).Error; err != nil {
		return fmt.Errorf("seed limit %s/%s: %w", classification.BudgetClassificationCode, category, err)
	}
	log.Printf("✅ limit %s/%s seeded: %s", classification.BudgetClassificationCode, category, amount.String())
	return nil
}
