// Package seed loads donor and patient fixtures from a blob bucket and registers them
// through the registry use case, so eligibility is computed the same way as for API writes.
package seed

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"bloodbank/internal/domain/entity"
	domainerrors "bloodbank/internal/domain/errors"
	"bloodbank/internal/errors"
	"bloodbank/internal/usecase"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	"gopkg.in/yaml.v3"
)

// File is the YAML layout of a seed file.
type File struct {
	Donors   []DonorRecord   `yaml:"donors"`
	Patients []PatientRecord `yaml:"patients"`
}

// DonorRecord is one donor entry. Blood is a label such as "O-".
type DonorRecord struct {
	Name               string `yaml:"name"`
	Blood              string `yaml:"blood"`
	LastDonationDate   string `yaml:"lastDonationDate"`
	WeightKg           string `yaml:"weightKg"`
	HemoglobinGdl      string `yaml:"hemoglobinGdl"`
	City               string `yaml:"city"`
	Contact            string `yaml:"contact"`
	OngoingMedications string `yaml:"ongoingMedications"`
	ChronicDiseases    string `yaml:"chronicDiseases"`
	Allergies          string `yaml:"allergies"`
}

// PatientRecord is one patient entry.
type PatientRecord struct {
	Name          string `yaml:"name"`
	Age           int    `yaml:"age"`
	Blood         string `yaml:"blood"`
	City          string `yaml:"city"`
	Contact       string `yaml:"contact"`
	Diagnosis     string `yaml:"diagnosis"`
	TreatmentPlan string `yaml:"treatmentPlan"`
	AdmissionDate string `yaml:"admissionDate"`
}

// Result summarises a seeding run.
type Result struct {
	DonorsRegistered   int
	PatientsRegistered int
	// Rejected lists entries skipped because they failed validation.
	Rejected []string
}

// Loader registers seed records.
type Loader struct {
	registry usecase.RegistryUsecase
	logger   *slog.Logger
}

// NewLoader is the constructor for Loader.
func NewLoader(registry usecase.RegistryUsecase, logger *slog.Logger) *Loader {
	return &Loader{registry: registry, logger: logger}
}

// Load reads key from the bucket at bucketURL and registers its records.
func (l *Loader) Load(ctx context.Context, bucketURL, key string) (*Result, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}
	defer bucket.Close()

	data, err := bucket.ReadAll(ctx, key)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read seed file %s", key)
	}

	file, err := Parse(data)
	if err != nil {
		return nil, err
	}

	return l.Apply(ctx, file)
}

// Parse decodes a seed file.
func Parse(data []byte) (*File, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(err, "failed to decode seed file")
	}

	return &file, nil
}

// Apply registers every record in file. Entries that fail validation are skipped and
// reported; any other failure stops the run.
func (l *Loader) Apply(ctx context.Context, file *File) (*Result, error) {
	result := &Result{}

	for i, record := range file.Donors {
		input, err := record.toInput()
		if err == nil {
			_, err = l.registry.RegisterDonor(ctx, input)
		}
		if err != nil {
			if !errors.Is(err, domainerrors.ErrValidationFailed) {
				return result, errors.Wrapf(err, "failed to register donor #%d", i)
			}
			l.reject(result, "donor", i, record.Name, err)

			continue
		}
		result.DonorsRegistered++
	}

	for i, record := range file.Patients {
		input, err := record.toInput()
		if err == nil {
			_, err = l.registry.RegisterPatient(ctx, input)
		}
		if err != nil {
			if !errors.Is(err, domainerrors.ErrValidationFailed) {
				return result, errors.Wrapf(err, "failed to register patient #%d", i)
			}
			l.reject(result, "patient", i, record.Name, err)

			continue
		}
		result.PatientsRegistered++
	}

	l.logger.Info("Seed applied",
		slog.Int("donors", result.DonorsRegistered),
		slog.Int("patients", result.PatientsRegistered),
		slog.Int("rejected", len(result.Rejected)),
	)

	return result, nil
}

func (l *Loader) reject(result *Result, kind string, index int, name string, err error) {
	l.logger.Warn("Seed entry rejected",
		slog.String("kind", kind),
		slog.Int("index", index),
		slog.String("name", name),
		slog.Any("error", err),
	)
	result.Rejected = append(result.Rejected, kind+" "+name+": "+err.Error())
}

func (r *DonorRecord) toInput() (*usecase.DonorInput, error) {
	blood, err := parseBlood(r.Blood)
	if err != nil {
		return nil, err
	}
	lastDonation, err := parseDate(r.LastDonationDate)
	if err != nil {
		return nil, err
	}

	return &usecase.DonorInput{
		Name:               r.Name,
		BloodGroup:         blood.Group,
		RhFactor:           blood.Rh,
		LastDonationDate:   lastDonation,
		WeightKg:           r.WeightKg,
		HemoglobinGdl:      r.HemoglobinGdl,
		City:               entity.City(r.City),
		Contact:            r.Contact,
		OngoingMedications: r.OngoingMedications,
		ChronicDiseases:    r.ChronicDiseases,
		Allergies:          r.Allergies,
	}, nil
}

func (r *PatientRecord) toInput() (*usecase.PatientInput, error) {
	blood, err := parseBlood(r.Blood)
	if err != nil {
		return nil, err
	}
	admission, err := parseDate(r.AdmissionDate)
	if err != nil {
		return nil, err
	}

	return &usecase.PatientInput{
		Name:          r.Name,
		Age:           r.Age,
		BloodGroup:    blood.Group,
		RhFactor:      blood.Rh,
		City:          entity.City(r.City),
		Contact:       r.Contact,
		Diagnosis:     r.Diagnosis,
		TreatmentPlan: r.TreatmentPlan,
		AdmissionDate: admission,
	}, nil
}

func parseBlood(label string) (entity.BloodProfile, error) {
	blood, ok := entity.ParseBloodLabel(label)
	if !ok {
		return entity.BloodProfile{}, domainerrors.ErrValidationFailed.WithCause(errors.Errorf("unknown blood label %q", label))
	}

	return blood, nil
}

// parseDate accepts YYYY-MM-DD; an empty value means no date.
func parseDate(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parsed, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithCause(errors.Errorf("invalid date %q", raw))
	}

	return &parsed, nil
}
