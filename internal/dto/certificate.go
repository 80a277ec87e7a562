package dto

import "github.com/Wekraft-001/admin-hub/internal/models"

// TemplateRequest is the certificate template form. Omitted fields take the
// form defaults on create and keep their current value on edit.
type TemplateRequest struct {
	Name                  string                 `json:"name" validate:"required,max=200"`
	Description           *string                `json:"description" validate:"omitempty,max=2000"`
	BackgroundColor       *string                `json:"backgroundColor" validate:"omitempty,hexcolor"`
	TextColor             *string                `json:"textColor" validate:"omitempty,hexcolor"`
	BorderStyle           *models.BorderStyle    `json:"borderStyle" validate:"omitempty,oneof=solid dashed double none"`
	IncludeCompletionDate *bool                  `json:"includeCompletionDate"`
	IncludeSignature      *bool                  `json:"includeSignature"`
	GenerationRule        *models.GenerationRule `json:"generationRule" validate:"omitempty,oneof=automatic manual"`
	CompletionThreshold   *int                   `json:"completionThreshold" validate:"omitempty,min=0,max=100"`
	IsActive              *bool                  `json:"isActive"`
}

// DefaultTemplate holds the blank form values.
func DefaultTemplate() models.CertificateTemplate {
	return models.CertificateTemplate{
		BackgroundColor:       "#FFFFFF",
		TextColor:             "#1F2937",
		BorderStyle:           models.BorderSolid,
		IncludeCompletionDate: true,
		IncludeSignature:      true,
		GenerationRule:        models.GenerationAutomatic,
		CompletionThreshold:   100,
		IsActive:              true,
	}
}

// ApplyTo overlays the submitted fields onto base.
func (r TemplateRequest) ApplyTo(base models.CertificateTemplate) models.CertificateTemplate {
	base.Name = r.Name
	if r.Description != nil {
		base.Description = *r.Description
	}
	if r.BackgroundColor != nil {
		base.BackgroundColor = *r.BackgroundColor
	}
	if r.TextColor != nil {
		base.TextColor = *r.TextColor
	}
	if r.BorderStyle != nil {
		base.BorderStyle = *r.BorderStyle
	}
	if r.IncludeCompletionDate != nil {
		base.IncludeCompletionDate = *r.IncludeCompletionDate
	}
	if r.IncludeSignature != nil {
		base.IncludeSignature = *r.IncludeSignature
	}
	if r.GenerationRule != nil {
		base.GenerationRule = *r.GenerationRule
	}
	if r.CompletionThreshold != nil {
		base.CompletionThreshold = *r.CompletionThreshold
	}
	if r.IsActive != nil {
		base.IsActive = *r.IsActive
	}
	return base
}
