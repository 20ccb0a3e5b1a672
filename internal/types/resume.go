// Package types provides type definitions for structured data used throughout the resume-analyzer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/google/uuid"
)

// ContactInfo holds contact details extracted from the top of a resume.
// It is only attached to a ResumeContent when at least one of name, email
// or phone was found.
type ContactInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Website  string `json:"website,omitempty"`
}

// IsEmpty reports whether no contact field was populated at all.
func (c *ContactInfo) IsEmpty() bool {
	return c == nil || (c.Name == "" && c.Email == "" && c.Phone == "" &&
		c.Location == "" && c.LinkedIn == "" && c.Website == "")
}

// Experience represents a single work experience block.
type Experience struct {
	Company     string   `json:"company"`
	Position    string   `json:"position"`
	Location    string   `json:"location,omitempty"`
	StartDate   string   `json:"start_date,omitempty"`
	EndDate     string   `json:"end_date,omitempty"`
	IsCurrent   bool     `json:"is_current,omitempty"`
	Description string   `json:"description,omitempty"`
	Bullets     []string `json:"bullets,omitempty"`
}

// Education represents a single education entry.
type Education struct {
	Institution  string   `json:"institution"`
	Degree       string   `json:"degree,omitempty"`
	Field        string   `json:"field,omitempty"`
	Location     string   `json:"location,omitempty"`
	StartDate    string   `json:"start_date,omitempty"`
	EndDate      string   `json:"end_date,omitempty"`
	GPA          string   `json:"gpa,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
}

// SkillGroup is an ordered list of skills under an optional category label.
// Order is meaningful: the first skill is the highest priority.
type SkillGroup struct {
	Category string   `json:"category,omitempty"`
	Skills   []string `json:"skills"`
}

// SectionInfo records where a recognized section header was found in the
// sanitized text. It doubles as a parse-quality signal for scoring.
type SectionInfo struct {
	Found    bool   `json:"found"`
	Position int    `json:"position"`
	Header   string `json:"header"`
}

// ResumeContent is the structured model of a parsed resume. It is built once
// per uploaded document and never mutated afterwards; re-analysis derives new
// score reports from the same content.
type ResumeContent struct {
	ContactInfo *ContactInfo           `json:"contact_info,omitempty"`
	Summary     string                 `json:"summary,omitempty"`
	Experience  []Experience           `json:"experience"`
	Education   []Education            `json:"education"`
	Skills      []SkillGroup           `json:"skills"`
	RawText     string                 `json:"raw_text"`
	Sections    map[string]SectionInfo `json:"sections"`
}

// TotalSkills returns the number of skills across all groups.
func (rc *ResumeContent) TotalSkills() int {
	total := 0
	for _, group := range rc.Skills {
		total += len(group.Skills)
	}
	return total
}

// Resume is an uploaded document record with its parsed content.
type Resume struct {
	ID         uuid.UUID      `json:"id"`
	Filename   string         `json:"filename"`
	DocType    string         `json:"doc_type"`
	UploadedAt time.Time      `json:"uploaded_at"`
	Content    *ResumeContent `json:"content,omitempty"`
}
