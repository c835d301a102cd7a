package file

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/iho/sekolah/internal/domain"
)

// Detail file section markers and field prefixes.
const (
	prefixName         = "Name: "
	prefixNISN         = "NISN: "
	prefixPlaceOfBirth = "Place of Birth: "
	prefixDateOfBirth  = "Date of Birth: "
	prefixGender       = "Gender: "
	prefixGrade        = "Admission Grade: "
	prefixSubject      = "Subject: "
	prefixLog          = "Log: "

	gradeSeparator = ", Grade: "
	conductMarker  = "--- Conduct Log ---"
)

// DetailRepository implements usecase.DetailRepository over per-student
// text files named <nisn>_<name>.txt under a base directory.
type DetailRepository struct {
	dir string
}

// NewDetailRepository creates a new DetailRepository.
func NewDetailRepository(dir string) *DetailRepository {
	return &DetailRepository{dir: dir}
}

func (r *DetailRepository) filePath(nisn int64, name string) string {
	return filepath.Join(r.dir, fmt.Sprintf("%d_%s.txt", nisn, name))
}

// Load reads a student's detail file. A missing file loads as an empty
// detail carrying only the NISN and name. Unparseable lines are ignored so
// one bad line never hides the rest of the file.
func (r *DetailRepository) Load(ctx context.Context, nisn int64, name string) (*domain.StudentDetail, error) {
	detail := &domain.StudentDetail{
		Applicant: domain.Applicant{NISN: nisn, Name: name},
	}

	f, err := os.Open(r.filePath(nisn, name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return detail, nil
		}
		return nil, fmt.Errorf("open detail file for %d: %w", nisn, err)
	}
	defer f.Close()

	inConduct := false
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case line == conductMarker:
			inConduct = true
		case strings.HasPrefix(line, prefixName):
			detail.Name = strings.TrimPrefix(line, prefixName)
		case strings.HasPrefix(line, prefixPlaceOfBirth):
			detail.PlaceOfBirth = strings.TrimPrefix(line, prefixPlaceOfBirth)
		case strings.HasPrefix(line, prefixDateOfBirth):
			detail.DateOfBirth = strings.TrimPrefix(line, prefixDateOfBirth)
		case strings.HasPrefix(line, prefixGender):
			detail.Gender = strings.TrimPrefix(line, prefixGender)
		case strings.HasPrefix(line, prefixGrade):
			if g, err := decimal.NewFromString(strings.TrimPrefix(line, prefixGrade)); err == nil {
				detail.AdmissionGrade = g
			}
		case strings.HasPrefix(line, prefixSubject):
			// Grade lines appended after the conduct marker are still
			// grades; accept them anywhere in the file.
			if sg, ok := parseSubjectLine(line); ok {
				detail.SubjectGrades = append(detail.SubjectGrades, sg)
			}
		case inConduct && strings.HasPrefix(line, prefixLog):
			detail.ConductLog = append(detail.ConductLog, parseConductLine(line))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read detail file for %d: %w", nisn, err)
	}
	return detail, nil
}

// Save rewrites the whole detail file atomically: the content goes to a
// temporary file first and replaces the old one by rename.
func (r *DetailRepository) Save(ctx context.Context, detail *domain.StudentDetail) error {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("create detail directory %s: %w", r.dir, err)
	}

	path := r.filePath(detail.NISN, detail.Name)
	tmp := path + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create detail file for %d: %w", detail.NISN, err)
	}

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%s%s\n", prefixName, detail.Name)
	fmt.Fprintf(w, "%s%d\n", prefixNISN, detail.NISN)
	fmt.Fprintf(w, "%s%s\n", prefixPlaceOfBirth, detail.PlaceOfBirth)
	fmt.Fprintf(w, "%s%s\n", prefixDateOfBirth, detail.DateOfBirth)
	fmt.Fprintf(w, "%s%s\n", prefixGender, detail.Gender)
	fmt.Fprintf(w, "%s%s\n", prefixGrade, detail.AdmissionGrade)

	for _, sg := range detail.SubjectGrades {
		fmt.Fprintf(w, "%s%s%s%d\n", prefixSubject, sg.Subject, gradeSeparator, sg.Grade)
	}

	if len(detail.ConductLog) > 0 {
		fmt.Fprintln(w, conductMarker)
		for _, note := range detail.ConductLog {
			fmt.Fprintln(w, formatConductLine(note))
		}
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write detail file for %d: %w", detail.NISN, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write detail file for %d: %w", detail.NISN, err)
	}
	return os.Rename(tmp, path)
}

// AppendGrades adds subject grade lines to the end of the detail file
// without rewriting it.
func (r *DetailRepository) AppendGrades(ctx context.Context, nisn int64, name string, grades []domain.SubjectGrade) error {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("create detail directory %s: %w", r.dir, err)
	}

	f, err := os.OpenFile(r.filePath(nisn, name), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open detail file for %d: %w", nisn, err)
	}

	for _, sg := range grades {
		if _, err := fmt.Fprintf(f, "%s%s%s%d\n", prefixSubject, sg.Subject, gradeSeparator, sg.Grade); err != nil {
			f.Close()
			return fmt.Errorf("append grades for %d: %w", nisn, err)
		}
	}
	return f.Close()
}

func parseSubjectLine(line string) (domain.SubjectGrade, bool) {
	body := strings.TrimPrefix(line, prefixSubject)
	subject, gradeStr, found := strings.Cut(body, gradeSeparator)
	if !found {
		return domain.SubjectGrade{}, false
	}
	grade, err := strconv.Atoi(strings.TrimSpace(gradeStr))
	if err != nil {
		return domain.SubjectGrade{}, false
	}
	return domain.SubjectGrade{Subject: subject, Grade: grade}, true
}

// formatConductLine renders a conduct note as one log line, e.g.
// "Log: ID: 01H..., Date: 2026-03-01, Type: Praise, Note: helped a peer".
func formatConductLine(note domain.ConductNote) string {
	if note.ID == "" {
		return fmt.Sprintf("%sDate: %s, Type: %s, Note: %s", prefixLog, note.Date, note.Type, note.Note)
	}
	return fmt.Sprintf("%sID: %s, Date: %s, Type: %s, Note: %s", prefixLog, note.ID, note.Date, note.Type, note.Note)
}

// parseConductLine is the inverse of formatConductLine. Files written
// before note IDs existed have no "ID:" field; those notes load with an
// empty ID.
func parseConductLine(line string) domain.ConductNote {
	var note domain.ConductNote
	body := strings.TrimPrefix(line, prefixLog)

	if strings.HasPrefix(body, "ID: ") {
		id, rest, _ := strings.Cut(strings.TrimPrefix(body, "ID: "), ", ")
		note.ID = id
		body = rest
	}
	if strings.HasPrefix(body, "Date: ") {
		date, rest, _ := strings.Cut(strings.TrimPrefix(body, "Date: "), ", ")
		note.Date = date
		body = rest
	}
	if strings.HasPrefix(body, "Type: ") {
		typ, rest, _ := strings.Cut(strings.TrimPrefix(body, "Type: "), ", ")
		note.Type = typ
		body = rest
	}
	note.Note = strings.TrimPrefix(body, "Note: ")
	return note
}
