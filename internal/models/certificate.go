package models

// BorderStyle enumerates certificate border renderings.
type BorderStyle string

const (
	BorderSolid  BorderStyle = "solid"
	BorderDashed BorderStyle = "dashed"
	BorderDouble BorderStyle = "double"
	BorderNone   BorderStyle = "none"
)

// GenerationRule controls when certificates are issued from a template.
type GenerationRule string

const (
	GenerationAutomatic GenerationRule = "automatic"
	GenerationManual    GenerationRule = "manual"
)

// CertificateTemplate describes how issued certificates look and when they are granted.
type CertificateTemplate struct {
	ID                    string         `json:"id"`
	Name                  string         `json:"name"`
	Description           string         `json:"description"`
	BackgroundColor       string         `json:"backgroundColor"`
	TextColor             string         `json:"textColor"`
	BorderStyle           BorderStyle    `json:"borderStyle"`
	IncludeCompletionDate bool           `json:"includeCompletionDate"`
	IncludeSignature      bool           `json:"includeSignature"`
	GenerationRule        GenerationRule `json:"generationRule"`
	CompletionThreshold   int            `json:"completionThreshold"`
	IsActive              bool           `json:"isActive"`
	CreatedDate           string         `json:"createdDate"`
}

// Certificate is an issued certificate. Learner and template names are copies
// taken at issue time and are not kept in sync.
type Certificate struct {
	ID                string `json:"id"`
	LearnerID         string `json:"learnerId"`
	LearnerName       string `json:"learnerName"`
	LearnerEmail      string `json:"learnerEmail"`
	TemplateID        string `json:"templateId"`
	TemplateName      string `json:"templateName"`
	IssuedDate        string `json:"issuedDate"`
	CompletionDate    string `json:"completionDate"`
	CertificateNumber string `json:"certificateNumber"`
}
