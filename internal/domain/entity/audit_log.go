package entity

import (
	"time"

	"gorm.io/datatypes"
)

// AuditLog represents a system audit trail entry
type AuditLog struct {
	ID        int64             `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    *int              `gorm:"index" json:"user_id,omitempty"`
	Action    string            `gorm:"type:varchar(100);not null;index" json:"action"`
	Metadata  datatypes.JSONMap `json:"metadata,omitempty"`
	CreatedAt time.Time         `gorm:"autoCreateTime;index" json:"created_at"`

	// Relationships
	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"user,omitempty"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// Common audit actions
const (
	AuditActionUserLogin          = "user.login"
	AuditActionUserLogout         = "user.logout"
	AuditActionUserCreate         = "user.create"
	AuditActionUserUpdate         = "user.update"
	AuditActionUserDelete         = "user.delete"
	AuditActionPatientCreate      = "patient.create"
	AuditActionPatientUpdate      = "patient.update"
	AuditActionPatientDelete      = "patient.delete"
	AuditActionDoctorCreate       = "doctor.create"
	AuditActionDoctorUpdate       = "doctor.update"
	AuditActionDoctorDelete       = "doctor.delete"
	AuditActionAvailabilityCreate = "availability.create"
	AuditActionAvailabilityUpdate = "availability.update"
	AuditActionAvailabilityDelete = "availability.delete"
	AuditActionAppointmentCreate  = "appointment.create"
	AuditActionAppointmentUpdate  = "appointment.update"
	AuditActionAppointmentDelete  = "appointment.delete"
	AuditActionAdmissionCreate    = "admission.create"
	AuditActionAdmissionUpdate    = "admission.update"
	AuditActionAdmissionDelete    = "admission.delete"
	AuditActionTestCreate         = "patient_test.create"
	AuditActionTestUpdate         = "patient_test.update"
	AuditActionTestDelete         = "patient_test.delete"
	AuditActionTheaterCreate      = "theater.create"
	AuditActionTheaterUpdate      = "theater.update"
	AuditActionTheaterDelete      = "theater.delete"
	AuditActionTheaterBook        = "theater.book"
	AuditActionStaffCreate        = "staff.create"
	AuditActionStaffUpdate        = "staff.update"
	AuditActionStaffDelete        = "staff.delete"
	AuditActionDutyAssign         = "staff.duty_assign"
	AuditActionAttendanceMark     = "staff.attendance_mark"
	AuditActionPaymentCreate      = "payment.create"
)
