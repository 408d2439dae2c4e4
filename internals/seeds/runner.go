// file: internals/seeds/runner.go
package seeds

import (
	"log"

	"gorm.io/gorm"

	budgetSeed "skbudget_backend/internals/seeds/budget"
	programSeed "skbudget_backend/internals/seeds/programs"
	systemSeed "skbudget_backend/internals/seeds/system"
)

// Run executes all seeders in dependency order. Every seeder is idempotent so
// the runner is safe to execute on every boot with SEED=true.
func Run(db *gorm.DB) {
	log.Println("🌱 running seeders...")

	steps := []struct {
		name string
		fn   func(*gorm.DB) error
	}{
		{"budget", budgetSeed.Seed},
		{"programs", programSeed.Seed},
		{"system", systemSeed.Seed},
	}

	for _, step := range steps {
		if err := step.fn(db); err != nil {
			log.Printf("❌ seeder %s failed: %v", step.name, err)
			return
		}
	}

	log.Println("🌱 all seeders finished")
}
