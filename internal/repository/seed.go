package repository

import "github.com/Wekraft-001/admin-hub/internal/models"

func strPtr(s string) *string { return &s }

func seedLearners() []models.Learner {
	return []models.Learner{
		{ID: "1", Name: "Sarah Johnson", Email: "sarah.j@example.com", Avatar: "SJ", CompletionPercentage: 85, EnrolledDate: "2024-01-15", LastActive: "2 hours ago", CertificateIssued: false, Status: models.LearnerStatusActive},
		{ID: "2", Name: "Michael Chen", Email: "michael.c@example.com", Avatar: "MC", CompletionPercentage: 100, EnrolledDate: "2024-01-10", LastActive: "1 day ago", CertificateIssued: true, Status: models.LearnerStatusActive},
		{ID: "3", Name: "Emily Rodriguez", Email: "emily.r@example.com", Avatar: "ER", CompletionPercentage: 45, EnrolledDate: "2024-02-01", LastActive: "5 hours ago", CertificateIssued: false, Status: models.LearnerStatusActive},
		{ID: "4", Name: "David Kim", Email: "david.k@example.com", Avatar: "DK", CompletionPercentage: 92, EnrolledDate: "2024-01-20", LastActive: "3 hours ago", CertificateIssued: false, Status: models.LearnerStatusActive},
		{ID: "5", Name: "Lisa Thompson", Email: "lisa.t@example.com", Avatar: "LT", CompletionPercentage: 20, EnrolledDate: "2024-02-15", LastActive: "2 weeks ago", CertificateIssued: false, Status: models.LearnerStatusInactive},
	}
}

func seedModules() []models.Module {
	return []models.Module{
		{ID: "1", Title: "Introduction to Learning", Description: "Get started with the fundamentals", Order: 1, Type: models.ModuleTypeText, Duration: "30 min", CompletionRate: 95},
		{ID: "2", Title: "Core Concepts", Description: "Understand the key principles", Order: 2, Type: models.ModuleTypeVideo, Duration: "45 min", CompletionRate: 78, UnlockCriteria: strPtr("Complete Module 1")},
		{ID: "3", Title: "Practical Applications", Description: "Apply what you have learned", Order: 3, Type: models.ModuleTypeQuiz, Duration: "60 min", CompletionRate: 62, UnlockCriteria: strPtr("Complete Module 2")},
		{ID: "4", Title: "Advanced Topics", Description: "Deep dive into complex subjects", Order: 4, Type: models.ModuleTypeVideo, Duration: "90 min", CompletionRate: 45, UnlockCriteria: strPtr("Complete Module 3")},
	}
}

func seedTemplates() []models.CertificateTemplate {
	return []models.CertificateTemplate{
		{ID: "1", Name: "Standard Completion", Description: "Default certificate for course completion", BackgroundColor: "#FFFFFF", TextColor: "#1F2937", BorderStyle: models.BorderSolid, IncludeCompletionDate: true, IncludeSignature: true, GenerationRule: models.GenerationAutomatic, CompletionThreshold: 100, IsActive: true, CreatedDate: "2024-01-01"},
		{ID: "2", Name: "Excellence Award", Description: "Certificate for top performers", BackgroundColor: "#FEF3C7", TextColor: "#92400E", BorderStyle: models.BorderDouble, IncludeCompletionDate: true, IncludeSignature: true, GenerationRule: models.GenerationManual, CompletionThreshold: 95, IsActive: true, CreatedDate: "2024-01-15"},
		{ID: "3", Name: "Participation", Description: "Certificate for course participation", BackgroundColor: "#DBEAFE", TextColor: "#1E3A8A", BorderStyle: models.BorderSolid, IncludeCompletionDate: false, IncludeSignature: false, GenerationRule: models.GenerationAutomatic, CompletionThreshold: 50, IsActive: false, CreatedDate: "2024-02-01"},
	}
}

func seedCertificates() []models.Certificate {
	return []models.Certificate{
		{ID: "1", LearnerID: "2", LearnerName: "Michael Chen", LearnerEmail: "michael.c@example.com", TemplateID: "1", TemplateName: "Standard Completion", IssuedDate: "2024-02-15", CompletionDate: "2024-02-15", CertificateNumber: "CERT-2024-001"},
		{ID: "2", LearnerID: "6", LearnerName: "Amanda White", LearnerEmail: "amanda.w@example.com", TemplateID: "1", TemplateName: "Standard Completion", IssuedDate: "2024-02-10", CompletionDate: "2024-02-10", CertificateNumber: "CERT-2024-002"},
		{ID: "3", LearnerID: "7", LearnerName: "Robert Brown", LearnerEmail: "robert.b@example.com", TemplateID: "2", TemplateName: "Excellence Award", IssuedDate: "2024-02-20", CompletionDate: "2024-02-18", CertificateNumber: "CERT-2024-003"},
	}
}

const docxMIME = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

func seedMedia() []models.MediaFile {
	return []models.MediaFile{
		{ID: "1", Name: "introduction-banner.jpg", Type: models.MediaTypeImage, MimeType: "image/jpeg", Size: 245760, URL: "/media/introduction-banner.jpg", ThumbnailURL: strPtr("/media/thumbs/introduction-banner.jpg"), UploadedBy: "Admin", UploadedDate: "2024-01-10", Tags: []string{"banner", "introduction", "course"}, UsedInModules: []string{"Introduction to Learning"}},
		{ID: "2", Name: "core-concepts-lecture.mp4", Type: models.MediaTypeVideo, MimeType: "video/mp4", Size: 15728640, URL: "/media/core-concepts-lecture.mp4", ThumbnailURL: strPtr("/media/thumbs/core-concepts-lecture.jpg"), UploadedBy: "Admin", UploadedDate: "2024-01-12", Tags: []string{"lecture", "core"}, UsedInModules: []string{"Core Concepts"}},
		{ID: "3", Name: "course-syllabus.pdf", Type: models.MediaTypeDocument, MimeType: "application/pdf", Size: 524288, URL: "/media/course-syllabus.pdf", UploadedBy: "Admin", UploadedDate: "2024-01-05", Tags: []string{"syllabus", "overview"}, UsedInModules: []string{"Introduction to Learning"}},
		{ID: "4", Name: "learner-handbook.docx", Type: models.MediaTypeDocument, MimeType: docxMIME, Size: 1048576, URL: "/media/learner-handbook.docx", UploadedBy: "Admin", UploadedDate: "2024-01-08", Tags: []string{"handbook", "guide"}, UsedInModules: []string{}},
		{ID: "5", Name: "practical-diagram.png", Type: models.MediaTypeImage, MimeType: "image/png", Size: 389120, URL: "/media/practical-diagram.png", ThumbnailURL: strPtr("/media/thumbs/practical-diagram.png"), UploadedBy: "Admin", UploadedDate: "2024-01-18", Tags: []string{"diagram", "practical"}, UsedInModules: []string{"Practical Applications"}},
		{ID: "6", Name: "advanced-topics-intro.mp4", Type: models.MediaTypeVideo, MimeType: "video/mp4", Size: 26214400, URL: "/media/advanced-topics-intro.mp4", ThumbnailURL: strPtr("/media/thumbs/advanced-topics-intro.jpg"), UploadedBy: "Admin", UploadedDate: "2024-01-25", Tags: []string{"advanced", "lecture"}, UsedInModules: []string{"Advanced Topics"}},
		{ID: "7", Name: "certificate-background.png", Type: models.MediaTypeImage, MimeType: "image/png", Size: 512000, URL: "/media/certificate-background.png", ThumbnailURL: strPtr("/media/thumbs/certificate-background.png"), UploadedBy: "Admin", UploadedDate: "2024-02-02", Tags: []string{"certificate", "design"}, UsedInModules: []string{}},
		{ID: "8", Name: "quiz-answer-key.pdf", Type: models.MediaTypeDocument, MimeType: "application/pdf", Size: 102400, URL: "/media/quiz-answer-key.pdf", UploadedBy: "Admin", UploadedDate: "2024-02-05", Tags: []string{"quiz", "answers"}, UsedInModules: []string{"Practical Applications"}},
	}
}
