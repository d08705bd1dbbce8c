package scan

import (
	"FarmToFork-Backend/domain"
	"FarmToFork-Backend/entities"
	"FarmToFork-Backend/pkg/batch"
	"FarmToFork-Backend/pkg/insight"
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/mitchellh/mapstructure"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type (
	// Envelope is the JSON document embedded in a scannable code.
	Envelope struct {
		Type string `json:"type"`
		Data any    `json:"data"`
	}

	ScanService interface {
		EncodeBatch(role string, b entities.ProduceBatch) (domain.ScanPayloadResponse, error)
		EncodeBatchByID(ctx context.Context, role string, batchID string) (domain.ScanPayloadResponse, error)
		EncodeProfile(u entities.User) (domain.ScanPayloadResponse, error)
		EncodeReport(report domain.RegulatorReport) (domain.ScanPayloadResponse, error)
		Decode(raw string) domain.ScanResult
		Resolve(ctx context.Context, raw string) domain.ScanResult
	}

	scanService struct {
		batchRepository batch.BatchRepository
		insightService  insight.InsightService
		validator       *validator.Validate
	}
)

func NewScanService(batchRepository batch.BatchRepository, insightService insight.InsightService, validator *validator.Validate) ScanService {
	return &scanService{
		batchRepository: batchRepository,
		insightService:  insightService,
		validator:       validator,
	}
}

// BatchTypeForRole picks the batch envelope type a role hands out. Roles without their own
// batch type share the farmer one.
func BatchTypeForRole(role string) string {
	switch role {
	case domain.RoleDistributor:
		return domain.ScanTypeDistributorBatch
	case domain.RoleRetailer:
		return domain.ScanTypeRetailerBatch
	default:
		return domain.ScanTypeFarmerBatch
	}
}

func ProfileTypeForRole(role string) (string, bool) {
	switch role {
	case domain.RoleConsumer:
		return domain.ScanTypeConsumerProfile, true
	case domain.RoleDistributor:
		return domain.ScanTypeDistributorProfile, true
	case domain.RoleFarmer:
		return domain.ScanTypeFarmerProfile, true
	case domain.RoleRegulator:
		return domain.ScanTypeRegulatorProfile, true
	}
	return "", false
}

func (s *scanService) EncodeBatch(role string, b entities.ProduceBatch) (domain.ScanPayloadResponse, error) {
	payload := domain.BatchScanPayload{
		BatchID:     b.ID,
		CropType:    b.CropType,
		FarmerName:  b.FarmerName,
		HarvestDate: b.HarvestDate,
		Quantity:    b.Quantity,
		Location:    b.Location,
	}

	t := BatchTypeForRole(role)
	switch t {
	case domain.ScanTypeDistributorBatch:
		payload.Status = b.Status
		payload.CurrentOwner = b.CurrentOwner
	case domain.ScanTypeRetailerBatch:
		payload.Status = b.Status
		payload.CurrentOwner = b.CurrentOwner
		payload.Price = b.Price
	}

	return encode(t, payload)
}

func (s *scanService) EncodeBatchByID(ctx context.Context, role string, batchID string) (domain.ScanPayloadResponse, error) {
	b, ok := s.batchRepository.GetBatchByID(ctx, batchID)
	if !ok {
		return domain.ScanPayloadResponse{}, domain.ErrBatchNotFound
	}
	return s.EncodeBatch(role, b)
}

func (s *scanService) EncodeProfile(u entities.User) (domain.ScanPayloadResponse, error) {
	t, ok := ProfileTypeForRole(u.Role)
	if !ok {
		return domain.ScanPayloadResponse{}, domain.ErrUnsupportedScanType
	}

	return encode(t, domain.ProfileScanPayload{
		UserID: u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Role:   u.Role,
	})
}

func (s *scanService) EncodeReport(report domain.RegulatorReport) (domain.ScanPayloadResponse, error) {
	return encode(domain.ScanTypeRegulatorReport, domain.ReportScanPayload{
		ReportID:       report.ReportID,
		GeneratedAt:    report.GeneratedAt,
		TotalBatches:   report.TotalBatches,
		FlaggedBatches: report.FlaggedBatches,
	})
}

func encode(t string, data any) (domain.ScanPayloadResponse, error) {
	raw, err := json.MarshalToString(Envelope{Type: t, Data: data})
	if err != nil {
		return domain.ScanPayloadResponse{}, eris.Wrap(err, "scan: encode envelope")
	}
	return domain.ScanPayloadResponse{Type: t, Payload: raw}, nil
}

// Decode never fails the caller; anything it cannot make sense of comes back with Error set.
func (s *scanService) Decode(raw string) domain.ScanResult {
	var env struct {
		Type string         `json:"type"`
		Data map[string]any `json:"data"`
	}
	if err := json.UnmarshalFromString(strings.TrimSpace(raw), &env); err != nil {
		zap.L().Debug("scan: malformed payload", zap.Error(err))
		return invalid()
	}
	if env.Data == nil {
		return invalid()
	}

	result := domain.ScanResult{Type: env.Type}
	switch env.Type {
	case domain.ScanTypeFarmerBatch, domain.ScanTypeDistributorBatch, domain.ScanTypeRetailerBatch:
		var p domain.BatchScanPayload
		if err := s.decodeData(env.Data, &p); err != nil {
			return invalid()
		}
		result.Batch = &p
	case domain.ScanTypeConsumerProfile, domain.ScanTypeDistributorProfile,
		domain.ScanTypeFarmerProfile, domain.ScanTypeRegulatorProfile:
		var p domain.ProfileScanPayload
		if err := s.decodeData(env.Data, &p); err != nil {
			return invalid()
		}
		result.Profile = &p
	case domain.ScanTypeRegulatorReport:
		var p domain.ReportScanPayload
		if err := s.decodeData(env.Data, &p); err != nil {
			return invalid()
		}
		result.Report = &p
	default:
		zap.L().Debug("scan: unknown payload type", zap.String("type", env.Type))
		result := invalid()
		result.Type = env.Type
		return result
	}
	return result
}

// Resolve decodes raw and, for batch payloads, attaches the live registry record and its insights.
func (s *scanService) Resolve(ctx context.Context, raw string) domain.ScanResult {
	result := s.Decode(raw)
	if result.Error != "" || result.Batch == nil {
		return result
	}

	b, ok := s.batchRepository.GetBatchByID(ctx, result.Batch.BatchID)
	if !ok {
		result.Error = domain.MessageScanBatchMissing
		return result
	}

	trace := batch.ToBatchResponse(b)
	insights := s.insightService.Generate(b)
	result.Trace = &trace
	result.Insights = &insights
	return result
}

func (s *scanService) decodeData(data map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeHookFunc(time.RFC3339),
		Result:           out,
	})
	if err != nil {
		return eris.Wrap(err, "scan: build decoder")
	}
	if err := dec.Decode(data); err != nil {
		return eris.Wrap(err, "scan: decode data")
	}
	if err := s.validator.Struct(out); err != nil {
		return eris.Wrap(err, "scan: validate data")
	}
	return nil
}

func invalid() domain.ScanResult {
	return domain.ScanResult{Error: domain.MessageInvalidScanFormat}
}
