package catalog

import "go.mongodb.org/mongo-driver/bson"

// Collection is one named entry in the catalog.
type Collection struct {
	Name   string
	Schema bson.D
}

func clinicalNoteSchema() bson.D {
	return bson.D{
		{Key: "bsonType", Value: "object"},
		{Key: "properties", Value: bson.D{
			{Key: "author", Value: ObjectID(true)},
			{Key: "note", Value: String(false)},
			{Key: "createdAt", Value: Date(true)},
		}},
		{Key: "additionalProperties", Value: true},
	}
}

func lineItemSchema() bson.D {
	return bson.D{
		{Key: "bsonType", Value: "object"},
		{Key: "properties", Value: bson.D{
			{Key: "line_id", Value: String(false)},
			{Key: "description", Value: String(false)},
			{Key: "quantity", Value: Number(false)},
			{Key: "unit_price", Value: Number(false)},
			{Key: "discount_amount", Value: Number(true)},
			{Key: "total", Value: Number(false)},
			{Key: "appointment_id", Value: Number(true)},
			{Key: "service_date", Value: Date(true)},
			{Key: "meta", Value: String(true)},
			{Key: "notes", Value: String(true)},
		}},
		{Key: "additionalProperties", Value: true},
	}
}

func treatmentSlotSchema() bson.D {
	return bson.D{
		{Key: "bsonType", Value: "object"},
		{Key: "properties", Value: bson.D{
			{Key: "day_of_week", Value: Number(false)},
			{Key: "start_time", Value: String(false)},
			{Key: "end_time", Value: String(false)},
			{Key: "location", Value: String(true)},
		}},
		{Key: "required", Value: bson.A{"day_of_week", "start_time", "end_time"}},
		{Key: "additionalProperties", Value: true},
	}
}

func noteAttachmentSchema() bson.D {
	return bson.D{
		{Key: "bsonType", Value: "object"},
		{Key: "properties", Value: bson.D{
			{Key: "fileName", Value: String(true)},
			{Key: "fileUrl", Value: String(true)},
		}},
		{Key: "additionalProperties", Value: true},
	}
}

// Collections returns the full catalog in application order. The result is
// freshly constructed on every call; callers own it outright.
func Collections() []Collection {
	return []Collection{
		{Name: "users", Schema: bson.D{
			{Key: "bsonType", Value: "object"},
			{Key: "required", Value: bson.A{"username", "password", "role", "active"}},
			{Key: "properties", Value: bson.D{
				{Key: "_id", Value: ObjectID(false)},
				{Key: "username", Value: String(false)},
				{Key: "email", Value: String(true)},
				{Key: "password", Value: String(false)},
				{Key: "role", Value: Enum("admin", "therapist", "receptionist")},
				{Key: "employeeID", Value: Number(true)},
				{Key: "administrator", Value: Bool(false)},
				{Key: "active", Value: Bool(false)},
				{Key: "lastLoginAt", Value: Date(true)},
				{Key: "failedLoginAttempts", Value: Number(true)},
				{Key: "lockedAt", Value: Date(true)},
				{Key: "passwordResetToken", Value: String(true)},
				{Key: "passwordResetExpires", Value: Date(true)},
				{Key: "twoFactorEnabled", Value: Bool(false)},
				{Key: "twoFactorSecret", Value: String(true)},
				{Key: "twoFactorTempSecret", Value: String(true)},
				{Key: "twoFactorVerifiedAt", Value: Date(true)},
				{Key: "createdAt", Value: Date(true)},
				{Key: "updatedAt", Value: Date(true)},
			}},
			{Key: "additionalProperties", Value: true},
		}},
		{Name: "patients", Schema: bson.D{
			{Key: "bsonType", Value: "object"},
			{Key: "required", Value: bson.A{"patient_id", "first_name", "surname", "email", "phone"}},
			{Key: "properties", Value: bson.D{
				{Key: "_id", Value: ObjectID(false)},
				{Key: "patient_id", Value: Number(false)},
				{Key: "first_name", Value: String(false)},
				{Key: "surname", Value: String(false)},
				{Key: "preferred_name", Value: String(true)},
				{Key: "date_of_birth", Value: Date(true)},
				{Key: "gender", Value: Enum("female", "male", "non-binary", "other", "unknown")},
				{Key: "email", Value: String(false)},
				{Key: "phone", Value: String(false)},
				{Key: "secondary_phone", Value: String(true)},
				{Key: "primary_contact_name", Value: String(true)},
				{Key: "primary_contact_email", Value: String(true)},
				{Key: "primary_contact_phone", Value: String(true)},
				{Key: "address", Value: object(true)},
				{Key: "emergency_contact", Value: object(true)},
				{Key: "insurance", Value: object(true)},
				{Key: "medical_alerts", Value: ArrayOf(String(false))},
				{Key: "primary_therapist_id", Value: Number(true)},
				{Key: "primaryTherapist", Value: ObjectID(true)},
				{Key: "status", Value: Enum("active", "inactive", "archived")},
				{Key: "tags", Value: ArrayOf(String(false))},
				{Key: "billing_mode", Value: Enum("individual", "monthly")},
				{Key: "consent_signed_at", Value: Date(true)},
				{Key: "notes_summary", Value: String(true)},
				{Key: "createdAt", Value: Date(true)},
				{Key: "updatedAt", Value: Date(true)},
			}},
			{Key: "additionalProperties", Value: true},
		}},
		{Name: "appointments", Schema: bson.D{
			{Key: "bsonType", Value: "object"},
			{Key: "required", Value: bson.A{
				"appointment_id",
				"patient_id",
				"employeeID",
				"date",
				"location",
				"first_name",
				"surname",
				"contact",
				"treatment_id",
				"treatment_description",
				"treatment_count",
				"price",
			}},
			{Key: "properties", Value: bson.D{
				{Key: "_id", Value: ObjectID(false)},
				{Key: "appointment_id", Value: Number(false)},
				{Key: "series_id", Value: String(true)},
				{Key: "patient_id", Value: Number(false)},
				{Key: "patient", Value: ObjectID(true)},
				{Key: "employeeID", Value: Number(false)},
				{Key: "therapist", Value: ObjectID(true)},
				{Key: "date", Value: Date(false)},
				{Key: "duration_minutes", Value: Number(true)},
				{Key: "location", Value: String(false)},
				{Key: "room", Value: String(true)},
				{Key: "first_name", Value: String(false)},
				{Key: "surname", Value: String(false)},
				{Key: "contact", Value: String(false)},
				{Key: "completed", Value: Bool(false)},
				{Key: "status", Value: Enum("scheduled", "completed", "cancelled", "cancelled_same_day", "other")},
				{Key: "completion_status", Value: Enum(
					"scheduled",
					"completed",
					"completed_manual",
					"cancelled_same_day",
					"cancelled_reschedule",
					"other",
				)},
				{Key: "completion_note", Value: String(true)},
				{Key: "cancellation_reason", Value: String(true)},
				{Key: "cancelled_at", Value: Date(true)},
				{Key: "treatment_id", Value: Number(false)},
				{Key: "treatment_description", Value: String(false)},
				{Key: "treatment_count", Value: Number(false)},
				{Key: "price", Value: Number(false)},
				{Key: "recurrence", Value: object(true)},
				{Key: "treatment_notes", Value: String(true)},
				{Key: "billing_mode", Value: Enum("individual", "monthly")},
				{Key: "clinical_notes", Value: ArrayOf(clinicalNoteSchema())},
				{Key: "createdBy", Value: ObjectID(true)},
				{Key: "updatedBy", Value: ObjectID(true)},
				{Key: "createdAt", Value: Date(true)},
				{Key: "updatedAt", Value: Date(true)},
			}},
			{Key: "additionalProperties", Value: true},
		}},
		{Name: "invoices", Schema: bson.D{
			{Key: "bsonType", Value: "object"},
			{Key: "required", Value: bson.A{"invoice_number", "patient_id", "subtotal", "total_due", "balance_due"}},
			{Key: "properties", Value: bson.D{
				{Key: "_id", Value: ObjectID(false)},
				{Key: "invoice_id", Value: Number(true)},
				{Key: "invoice_number", Value: String(false)},
				{Key: "patient_id", Value: Number(false)},
				{Key: "client_id", Value: Number(true)},
				{Key: "appointment_id", Value: Number(true)},
				{Key: "appointment_ids", Value: ArrayOf(Number(false))},
				{Key: "patient", Value: ObjectID(true)},
				{Key: "billing_contact_name", Value: String(true)},
				{Key: "billing_contact_email", Value: String(true)},
				{Key: "billing_contact_phone", Value: String(true)},
				{Key: "status", Value: Enum("draft", "sent", "partially_paid", "paid", "void")},
				{Key: "line_items", Value: ArrayOf(lineItemSchema())},
				{Key: "totals", Value: object(true)},
				{Key: "subtotal", Value: Number(false)},
				{Key: "discount", Value: object(true)},
				{Key: "total_due", Value: Number(false)},
				{Key: "total_paid", Value: Number(true)},
				{Key: "balance_due", Value: Number(false)},
				{Key: "issue_date", Value: Date(true)},
				{Key: "due_date", Value: Date(true)},
				{Key: "sent_at", Value: Date(true)},
				{Key: "paid_at", Value: Date(true)},
				{Key: "pdf_path", Value: String(true)},
				{Key: "pdf_url", Value: String(true)},
				{Key: "pdf_generated_at", Value: Date(true)},
				{Key: "html_snapshot", Value: String(true)},
				{Key: "currency", Value: String(true)},
				{Key: "notes", Value: String(true)},
				{Key: "createdBy", Value: ObjectID(true)},
				{Key: "updatedBy", Value: ObjectID(true)},
				{Key: "createdAt", Value: Date(true)},
				{Key: "updatedAt", Value: Date(true)},
			}},
			{Key: "additionalProperties", Value: true},
		}},
		{Name: "payments", Schema: bson.D{
			{Key: "bsonType", Value: "object"},
			{Key: "required", Value: bson.A{"payment_id", "patient_id", "amount_paid"}},
			{Key: "properties", Value: bson.D{
				{Key: "_id", Value: ObjectID(false)},
				{Key: "payment_id", Value: Number(false)},
				{Key: "invoice_id", Value: Number(true)},
				{Key: "invoice_number", Value: String(true)},
				{Key: "patient_id", Value: Number(false)},
				{Key: "appointment_id", Value: Number(true)},
				{Key: "treatment_id", Value: Number(true)},
				{Key: "treatment_description", Value: String(true)},
				{Key: "amount_paid", Value: Number(false)},
				{Key: "currency", Value: String(true)},
				{Key: "payment_date", Value: Date(true)},
				{Key: "method", Value: Enum("card", "cash", "transfer", "insurance", "other")},
				{Key: "reference", Value: String(true)},
				{Key: "status", Value: Enum("applied", "pending", "failed", "refunded")},
				{Key: "notes", Value: String(true)},
				{Key: "recordedBy", Value: ObjectID(true)},
				{Key: "createdAt", Value: Date(true)},
				{Key: "updatedAt", Value: Date(true)},
			}},
			{Key: "additionalProperties", Value: true},
		}},
		{Name: "services", Schema: bson.D{
			{Key: "bsonType", Value: "object"},
			{Key: "required", Value: bson.A{"treatment_id", "treatment_description", "price"}},
			{Key: "properties", Value: bson.D{
				{Key: "_id", Value: ObjectID(false)},
				{Key: "treatment_id", Value: Number(false)},
				{Key: "treatment_description", Value: String(false)},
				{Key: "price", Value: Number(false)},
				{Key: "duration_minutes", Value: Number(true)},
				{Key: "active", Value: Bool(false)},
				{Key: "notes", Value: String(true)},
				{Key: "createdAt", Value: Date(true)},
				{Key: "updatedAt", Value: Date(true)},
			}},
			{Key: "additionalProperties", Value: true},
		}},
		{Name: "notes", Schema: bson.D{
			{Key: "bsonType", Value: "object"},
			{Key: "required", Value: bson.A{"patient_id", "note"}},
			{Key: "properties", Value: bson.D{
				{Key: "_id", Value: ObjectID(false)},
				{Key: "patient_id", Value: Number(false)},
				{Key: "appointment_id", Value: Number(true)},
				{Key: "employeeID", Value: Number(true)},
				{Key: "author", Value: ObjectID(true)},
				{Key: "type", Value: Enum("treatment", "communication", "administrative")},
				{Key: "note", Value: String(false)},
				{Key: "visibility", Value: Enum("private", "team", "admin")},
				{Key: "date", Value: Date(true)},
				{Key: "attachments", Value: ArrayOf(noteAttachmentSchema())},
				{Key: "createdBy", Value: ObjectID(true)},
				{Key: "updatedBy", Value: ObjectID(true)},
				{Key: "createdAt", Value: Date(true)},
				{Key: "updatedAt", Value: Date(true)},
			}},
			{Key: "additionalProperties", Value: true},
		}},
		{Name: "auditlogs", Schema: bson.D{
			{Key: "bsonType", Value: "object"},
			{Key: "required", Value: bson.A{"event"}},
			{Key: "properties", Value: bson.D{
				{Key: "_id", Value: ObjectID(false)},
				{Key: "event", Value: String(false)},
				{Key: "user", Value: ObjectID(true)},
				{Key: "user_role", Value: String(true)},
				{Key: "actor", Value: ObjectID(true)},
				{Key: "actor_role", Value: String(true)},
				{Key: "ip_address", Value: String(true)},
				{Key: "metadata", Value: object(true)},
				{Key: "success", Value: Bool(false)},
				{Key: "createdAt", Value: Date(true)},
				{Key: "updatedAt", Value: Date(true)},
			}},
			{Key: "additionalProperties", Value: true},
		}},
		{Name: "communications", Schema: bson.D{
			{Key: "bsonType", Value: "object"},
			{Key: "required", Value: bson.A{"communication_id", "patient_id", "type", "content"}},
			{Key: "properties", Value: bson.D{
				{Key: "_id", Value: ObjectID(false)},
				{Key: "communication_id", Value: Number(false)},
				{Key: "patient_id", Value: Number(false)},
				{Key: "patient", Value: ObjectID(true)},
				{Key: "employeeID", Value: Number(true)},
				{Key: "user", Value: ObjectID(true)},
				{Key: "date", Value: Date(true)},
				{Key: "type", Value: Enum("email", "sms", "phone", "in_person", "note")},
				{Key: "subject", Value: String(true)},
				{Key: "content", Value: String(false)},
				{Key: "delivery_status", Value: Enum("pending", "sent", "delivered", "failed")},
				{Key: "metadata", Value: object(true)},
				{Key: "createdAt", Value: Date(true)},
				{Key: "updatedAt", Value: Date(true)},
			}},
			{Key: "additionalProperties", Value: true},
		}},
		{Name: "clinicsettings", Schema: bson.D{
			{Key: "bsonType", Value: "object"},
			{Key: "properties", Value: bson.D{
				{Key: "_id", Value: ObjectID(false)},
				{Key: "branding", Value: object(true)},
				{Key: "invoice_prefix", Value: String(true)},
				{Key: "email_provider", Value: Enum("sendgrid", "postmark", "smtp", "none")},
				{Key: "email_templates", Value: ArrayOf(anyObject())},
				{Key: "notification_preferences", Value: object(true)},
				{Key: "updatedBy", Value: ObjectID(true)},
				{Key: "createdAt", Value: Date(true)},
				{Key: "updatedAt", Value: Date(true)},
			}},
			{Key: "additionalProperties", Value: true},
		}},
		{Name: "datasubjectrequests", Schema: bson.D{
			{Key: "bsonType", Value: "object"},
			{Key: "required", Value: bson.A{"request_id", "patient_id", "type", "dueAt", "requesterName"}},
			{Key: "properties", Value: bson.D{
				{Key: "_id", Value: ObjectID(false)},
				{Key: "request_id", Value: Number(false)},
				{Key: "patient_id", Value: Number(false)},
				{Key: "type", Value: Enum("access", "rectification", "erasure", "restriction", "portability")},
				{Key: "status", Value: Enum("open", "in_progress", "fulfilled", "rejected")},
				{Key: "requesterName", Value: String(false)},
				{Key: "requesterEmail", Value: String(true)},
				{Key: "receivedAt", Value: Date(true)},
				{Key: "dueAt", Value: Date(false)},
				{Key: "completedAt", Value: Date(true)},
				{Key: "handledBy", Value: ObjectID(true)},
				{Key: "notes", Value: String(true)},
				{Key: "history", Value: ArrayOf(anyObject())},
				{Key: "createdAt", Value: Date(true)},
				{Key: "updatedAt", Value: Date(true)},
			}},
			{Key: "additionalProperties", Value: true},
		}},
		{Name: "refreshtokens", Schema: bson.D{
			{Key: "bsonType", Value: "object"},
			{Key: "required", Value: bson.A{"user", "tokenId", "expiresAt"}},
			{Key: "properties", Value: bson.D{
				{Key: "_id", Value: ObjectID(false)},
				{Key: "user", Value: ObjectID(false)},
				{Key: "tokenId", Value: String(false)},
				{Key: "expiresAt", Value: Date(false)},
				{Key: "revokedAt", Value: Date(true)},
				{Key: "replacedByTokenId", Value: String(true)},
				{Key: "createdAt", Value: Date(true)},
				{Key: "updatedAt", Value: Date(true)},
			}},
			{Key: "additionalProperties", Value: true},
		}},
		{Name: "counters", Schema: bson.D{
			{Key: "bsonType", Value: "object"},
			{Key: "required", Value: bson.A{"key"}},
			{Key: "properties", Value: bson.D{
				{Key: "_id", Value: ObjectID(false)},
				{Key: "key", Value: String(false)},
				{Key: "value", Value: Number(true)},
				{Key: "createdAt", Value: Date(true)},
				{Key: "updatedAt", Value: Date(true)},
			}},
			{Key: "additionalProperties", Value: true},
		}},
		{Name: "therapistavailabilities", Schema: bson.D{
			{Key: "bsonType", Value: "object"},
			{Key: "required", Value: bson.A{"therapist", "therapist_employee_id", "effective_from"}},
			{Key: "properties", Value: bson.D{
				{Key: "_id", Value: ObjectID(false)},
				{Key: "therapist", Value: ObjectID(false)},
				{Key: "therapist_employee_id", Value: Number(false)},
				{Key: "slots", Value: ArrayOf(treatmentSlotSchema())},
				{Key: "effective_from", Value: Date(false)},
				{Key: "effective_to", Value: Date(true)},
				{Key: "is_default", Value: Bool(false)},
				{Key: "notes", Value: String(true)},
				{Key: "createdAt", Value: Date(true)},
				{Key: "updatedAt", Value: Date(true)},
			}},
			{Key: "additionalProperties", Value: true},
		}},
		{Name: "treatment_note_templates", Schema: bson.D{
			{Key: "bsonType", Value: "object"},
			{Key: "required", Value: bson.A{"name", "body", "createdBy", "updatedBy"}},
			{Key: "properties", Value: bson.D{
				{Key: "_id", Value: ObjectID(false)},
				{Key: "name", Value: String(false)},
				{Key: "body", Value: String(false)},
				{Key: "tags", Value: ArrayOf(String(false))},
				{Key: "createdBy", Value: ObjectID(false)},
				{Key: "updatedBy", Value: ObjectID(false)},
				{Key: "archived", Value: Bool(false)},
				{Key: "createdAt", Value: Date(true)},
				{Key: "updatedAt", Value: Date(true)},
			}},
			{Key: "additionalProperties", Value: true},
		}},
		{Name: "profit_loss_entries", Schema: bson.D{
			{Key: "bsonType", Value: "object"},
			{Key: "required", Value: bson.A{"date", "type", "amount", "createdBy", "updatedBy"}},
			{Key: "properties", Value: bson.D{
				{Key: "_id", Value: ObjectID(false)},
				{Key: "entry_id", Value: Number(true)},
				{Key: "date", Value: Date(false)},
				{Key: "type", Value: Enum("income", "expense")},
				{Key: "category", Value: String(true)},
				{Key: "description", Value: String(true)},
				{Key: "amount", Value: Number(false)},
				{Key: "source", Value: Enum("manual", "invoice")},
				{Key: "invoice_number", Value: String(true)},
				{Key: "invoice_id", Value: ObjectID(true)},
				{Key: "createdBy", Value: ObjectID(false)},
				{Key: "updatedBy", Value: ObjectID(false)},
				{Key: "createdAt", Value: Date(true)},
				{Key: "updatedAt", Value: Date(true)},
			}},
			{Key: "additionalProperties", Value: true},
		}},
	}
}
