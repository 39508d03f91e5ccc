// Package dblogger records directory mutations in an audit table.
package dblogger

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dealsdray/empdirapi/pkg/utils/zaplogger"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var AuditLogsTableName = "_audit_logs"

// Action represents the kind of mutation being recorded
type Action string

const (
	ActionCreate Action = "CREATE"
	ActionUpdate Action = "UPDATE"
	ActionDelete Action = "DELETE"
)

// AuditLog represents an audit entry in the database
type AuditLog struct {
	ID        uint32    `gorm:"primaryKey"`
	Timestamp time.Time `gorm:"index"`
	Package   string    `gorm:"index"`
	Action    Action    `gorm:"index"`
	Message   string
	Fields    datatypes.JSON `gorm:"type:jsonb"`
}

// TableName overrides the table name used by AuditLog
func (l *AuditLog) TableName() string {
	return AuditLogsTableName
}

// Logger writes audit entries for a single package
type Logger struct {
	db          *gorm.DB
	packageName string
}

// New creates a new audit Logger instance. The audit table is migrated
// together with the data tables at startup.
func New(db *gorm.DB, packageName string) *Logger {
	return &Logger{
		db:          db,
		packageName: packageName,
	}
}

// Record inserts a single audit entry. Failures are reported to the console
// logger and never propagate to the caller.
func (l *Logger) Record(action Action, message string, fields map[string]interface{}) {
	if err := l.record(action, message, fields); err != nil {
		zaplogger.Error("failed to record audit entry", zaplogger.Fields{
			"action": string(action),
			"error":  err.Error(),
		})
	}
}

func (l *Logger) record(action Action, message string, fields map[string]interface{}) error {
	var fieldsJSON datatypes.JSON
	if len(fields) > 0 {
		jsonBytes, err := json.Marshal(fields)
		if err != nil {
			return fmt.Errorf("failed to marshal fields: %v", err)
		}
		fieldsJSON = datatypes.JSON(jsonBytes)
	}

	entry := AuditLog{
		Timestamp: time.Now(),
		Package:   l.packageName,
		Action:    action,
		Message:   message,
		Fields:    fieldsJSON,
	}

	if err := l.db.Create(&entry).Error; err != nil {
		return fmt.Errorf("failed to insert audit entry: %v", err)
	}

	return nil
}
