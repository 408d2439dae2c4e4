// file: internals/features/programs/programs/model/program_model.go
package model

import (
	"time"

	"gorm.io/gorm"
)

/* =========================
   Model: programs
   ========================= */

type Program struct {
	ProgramID          int64      `json:"program_id"          gorm:"column:program_id;primaryKey;autoIncrement"`
	ProgramCode        string     `json:"program_code"        gorm:"column:program_code;type:varchar(30);not null"`
	ProgramName        string     `json:"program_name"        gorm:"column:program_name;type:varchar(160);not null"`
	ProgramDescription *string    `json:"program_description,omitempty" gorm:"column:program_description;type:text"`
	ProgramLocation    *string    `json:"program_location,omitempty"    gorm:"column:program_location;type:varchar(200)"`
	ProgramStartDate   *time.Time `json:"program_start_date,omitempty"  gorm:"column:program_start_date;type:date"`
	ProgramEndDate     *time.Time `json:"program_end_date,omitempty"    gorm:"column:program_end_date;type:date"`
	ProgramIsActive    bool       `json:"program_is_active"   gorm:"column:program_is_active;not null;default:true"`

	ProgramCreatedAt time.Time  `json:"program_created_at"           gorm:"column:program_created_at;type:timestamptz;not null;default:now()"`
	ProgramUpdatedAt time.Time  `json:"program_updated_at"           gorm:"column:program_updated_at;type:timestamptz;not null;default:now()"`
	ProgramDeletedAt *time.Time `json:"program_deleted_at,omitempty" gorm:"column:program_deleted_at;type:timestamptz"`
}

func (Program) TableName() string { return "programs" }

func (p *Program) BeforeCreate(tx *gorm.DB) error {
	p.ProgramUpdatedAt = time.Now().UTC()
	return nil
}
func (p *Program) BeforeUpdate(tx *gorm.DB) error {
	p.ProgramUpdatedAt = time.Now().UTC()
	return nil
}

func ScopeAlive(db *gorm.DB) *gorm.DB {
	return db.Where("program_deleted_at IS NULL")
}

/* =========================
   Model: program_documents
   ========================= */

type ProgramDocument struct {
	ProgramDocumentID        int64  `json:"program_document_id"         gorm:"column:program_document_id;primaryKey;autoIncrement"`
	ProgramDocumentProgramID int64  `json:"program_document_program_id" gorm:"column:program_document_program_id;not null;index"`
	ProgramDocumentTitle     string `json:"program_document_title"      gorm:"column:program_document_title;type:varchar(160);not null"`
	ProgramDocumentFileURL   string `json:"program_document_file_url"   gorm:"column:program_document_file_url;type:text;not null"`
	ProgramDocumentFileType  string `json:"program_document_file_type"  gorm:"column:program_document_file_type;type:varchar(80);not null"`

	ProgramDocumentCreatedAt time.Time  `json:"program_document_created_at"           gorm:"column:program_document_created_at;type:timestamptz;not null;default:now()"`
	ProgramDocumentDeletedAt *time.Time `json:"program_document_deleted_at,omitempty" gorm:"column:program_document_deleted_at;type:timestamptz"`
}

func (ProgramDocument) TableName() string { return "program_documents" }

func ScopeDocumentAlive(db *gorm.DB) *gorm.DB {
	return db.Where("program_document_deleted_at IS NULL")
}
