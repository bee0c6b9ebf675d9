// Package export assembles validated mandates into the fixed-column batch
// files consumed by banking middleware.
package export

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"mandate/internal/core"
	"mandate/internal/sepatext"
)

const (
	maxPurposeLines  = 4
	maxPurposeLength = 35
	exportCurrency   = "EUR"

	mimeCSV = "text/csv"
	mimeZip = "application/zip"
)

// Column order of the batch format, fixed by the banking middleware.
var columns = []string{
	"localBic", "localIban", "remoteBic", "remoteIban",
	"date", "amountValue", "amountCurrency",
	"localName", "remoteName", "creditorSchemeId",
	"mandateReference", "mandateDate", "debtorName", "sequenceKind",
	"purpose0", "purpose1", "purpose2", "purpose3",
}

// Partitions are rendered in this order so archives are deterministic.
var kindOrder = []core.SequenceKind{core.SequenceFirst, core.SequenceFollowing, core.SequenceOnce}

type Config struct {
	CreditorName     string `envconfig:"CREDITOR_NAME" required:"true"`
	CreditorIBAN     string `envconfig:"CREDITOR_IBAN" required:"true"`
	CreditorBIC      string `envconfig:"CREDITOR_BIC" required:"true"`
	CreditorSchemeID string `envconfig:"CREDITOR_SCHEME_ID" required:"true"`
	GracePeriodDays  int    `envconfig:"EXPORT_GRACE_DAYS" default:"14"` // days until the debit falls due
	SubmitLeadDays   int    `envconfig:"EXPORT_LEAD_DAYS" default:"6"`   // bank lead time before the due date
}

// SubjectResolver supplies the debit amount and purpose lines for one
// mandate of a run.
type SubjectResolver interface {
	Resolve(ctx context.Context, m core.Mandate) (core.Debit, error)
}

// Artifact is the rendered export: one CSV file, or a zip with one entry per
// sequence kind when a run mixes kinds.
type Artifact struct {
	FileName           string
	MIMEType           string
	Data               []byte
	DueDate            time.Time
	SubmissionDeadline time.Time
}

// Assembler turns a candidate mandate set into an export artifact. It
// decrypts and re-validates every row before a single output byte is
// written; one bad row aborts the whole batch.
type Assembler struct {
	cipher    core.FieldCipher
	validator *core.Validator
	identity  core.IdentityResolver
	creditor  Config
}

func NewAssembler(cipher core.FieldCipher, validator *core.Validator, identity core.IdentityResolver, creditor Config) *Assembler {
	return &Assembler{
		cipher:    cipher,
		validator: validator,
		identity:  identity,
		creditor:  creditor,
	}
}

// Assemble validates the whole candidate set, partitions it by sequence
// kind and renders the batch files. Rows of different kinds never share an
// output file because the banking side batches them separately.
func (a *Assembler) Assemble(
	ctx context.Context,
	mandates []core.Mandate,
	asOf time.Time,
	gracePeriodDays, submitLeadDays int,
	resolver SubjectResolver,
	baseName string,
) (Artifact, error) {
	if len(mandates) == 0 {
		return Artifact{}, core.ErrEmptyBatch
	}

	dueDate := asOf.AddDate(0, 0, gracePeriodDays)
	submissionDeadline := dueDate.AddDate(0, 0, -submitLeadDays)

	partitions := make(map[core.SequenceKind][][]string)
	for _, m := range mandates {
		kind, row, err := a.renderRow(ctx, m, dueDate, resolver)
		if err != nil {
			return Artifact{}, err
		}
		partitions[kind] = append(partitions[kind], row)
	}

	artifact := Artifact{
		DueDate:            dueDate,
		SubmissionDeadline: submissionDeadline,
	}

	var present []core.SequenceKind
	for _, kind := range kindOrder {
		if len(partitions[kind]) > 0 {
			present = append(present, kind)
		}
	}

	if len(present) == 1 {
		data, err := renderCSV(partitions[present[0]])
		if err != nil {
			return Artifact{}, err
		}
		artifact.FileName = baseName + ".csv"
		artifact.MIMEType = mimeCSV
		artifact.Data = data
		return artifact, nil
	}

	data, err := renderArchive(baseName, present, partitions)
	if err != nil {
		return Artifact{}, err
	}
	artifact.FileName = baseName + ".zip"
	artifact.MIMEType = mimeZip
	artifact.Data = data
	return artifact, nil
}

func (a *Assembler) renderRow(ctx context.Context, m core.Mandate, dueDate time.Time, resolver SubjectResolver) (core.SequenceKind, []string, error) {
	if err := a.cipher.DecryptFields(ctx, &m); err != nil {
		return "", nil, fmt.Errorf("mandate %s: %w", m.Reference, err)
	}

	violations, err := a.validator.Validate(ctx, m)
	if err != nil {
		return "", nil, fmt.Errorf("mandate %s: %w", m.Reference, err)
	}
	if len(violations) > 0 {
		return "", nil, fmt.Errorf("mandate %s: %w", m.Reference, core.ValidationError{Violations: violations})
	}

	debit, err := resolver.Resolve(ctx, m)
	if err != nil {
		return "", nil, fmt.Errorf("mandate %s: %w", m.Reference, err)
	}
	if !debit.Amount.IsPositive() {
		return "", nil, fmt.Errorf("mandate %s: %w: %s", m.Reference, core.ErrAmount, debit.Amount)
	}

	purposes, err := purposeLines(m.Reference, debit.Purpose)
	if err != nil {
		return "", nil, err
	}

	musician, err := a.identity.Musician(ctx, m.MusicianID)
	if err != nil {
		return "", nil, fmt.Errorf("mandate %s: debtor lookup: %w", m.Reference, err)
	}
	debtorName := sepatext.Transliterate(strings.TrimSpace(musician.FirstName + " " + musician.LastName))

	kind := core.ResolveSequenceKind(m)

	row := []string{
		a.creditor.CreditorBIC,
		a.creditor.CreditorIBAN,
		m.BIC,
		m.IBAN,
		dueDate.Format(time.DateOnly),
		debit.Amount.StringFixed(2), // locale-independent dot decimal
		exportCurrency,
		a.creditor.CreditorName,
		m.AccountOwner,
		a.creditor.CreditorSchemeID,
		m.Reference,
		m.IssuedDate.Format(time.DateOnly),
		debtorName,
		kind.Token(),
		purposes[0], purposes[1], purposes[2], purposes[3],
	}

	return kind, row, nil
}

// purposeLines transliterates each purpose line and rejects, never
// truncates, text that is still too long or non-conformant afterwards.
func purposeLines(reference string, purpose []string) ([maxPurposeLines]string, error) {
	var lines [maxPurposeLines]string

	if len(purpose) > maxPurposeLines {
		return lines, fmt.Errorf("mandate %s: %w: %d purpose lines", reference, core.ErrPurposeLength, len(purpose))
	}

	for i, line := range purpose {
		line = sepatext.Transliterate(line)
		if len(line) > maxPurposeLength {
			return lines, fmt.Errorf("mandate %s: %w: %q", reference, core.ErrPurposeLength, line)
		}
		if !sepatext.Conformant(line) {
			return lines, fmt.Errorf("mandate %s: %w: %q", reference, core.ErrPurposeCharset, line)
		}
		lines[i] = line
	}

	return lines, nil
}

func renderCSV(rows [][]string) ([]byte, error) {
	var buf bytes.Buffer

	w := csv.NewWriter(&buf)
	w.Comma = ';'

	if err := w.Write(columns); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("failed to write rows: %w", err)
	}

	return buf.Bytes(), nil
}

func renderArchive(baseName string, kinds []core.SequenceKind, partitions map[core.SequenceKind][][]string) ([]byte, error) {
	var buf bytes.Buffer

	zw := zip.NewWriter(&buf)
	for _, kind := range kinds {
		data, err := renderCSV(partitions[kind])
		if err != nil {
			return nil, err
		}

		entry, err := zw.Create(fmt.Sprintf("%s-%s.csv", baseName, kind.Token()))
		if err != nil {
			return nil, fmt.Errorf("failed to create archive entry: %w", err)
		}
		if _, err := entry.Write(data); err != nil {
			return nil, fmt.Errorf("failed to write archive entry: %w", err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize archive: %w", err)
	}

	return buf.Bytes(), nil
}
