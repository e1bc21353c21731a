package listingclient

import (
	candidateapimodels "candidate-browser/models/api/candidate"
	listingapimodels "candidate-browser/models/api/listing"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

type Provider interface {
	// GET {base}/candidates, фильтрация, сортировка и страницы на стороне listing api
	List(ctx context.Context, req candidateapimodels.ListRequest) (candidateapimodels.ListResult, error)

	// GET {base}/sources
	Sources(ctx context.Context) ([]string, error)

	// GET {base}/application_types
	ApplicationTypes(ctx context.Context) ([]string, error)
}

type Config struct {
	Host      string
	Timeout   time.Duration
	RateLimit float64 // запросов в секунду
	RateBurst int
}

func NewProvider(cfg Config) Provider {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	burst := cfg.RateBurst
	if burst < 1 {
		burst = 1
	}
	return &impl{
		host:       strings.TrimRight(cfg.Host, "/"),
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(limit, burst),
	}
}

const (
	candidatesPath       string = "%s/candidates"
	sourcesPath          string = "%s/sources"
	applicationTypesPath string = "%s/application_types"
)

const serviceName string = "listing"

type impl struct {
	host       string
	httpClient *http.Client
	limiter    *rate.Limiter
}

func (i impl) List(ctx context.Context, req candidateapimodels.ListRequest) (candidateapimodels.ListResult, error) {
	uri := fmt.Sprintf(candidatesPath, i.host) + "?" + EncodeQuery(req).Encode()
	logger := log.
		WithField("external_request", uri)

	r, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return candidateapimodels.ListResult{}, errors.Wrap(err, "ошибка формирования запроса")
	}
	resp := listingapimodels.ListResponse{}
	if err = i.sendRequest(ctx, logger, r, &resp); err != nil {
		return candidateapimodels.ListResult{}, err
	}
	result := candidateapimodels.ListResult{
		Candidates: resp.Data,
		TotalPages: resp.GetTotalPages(),
	}
	if result.Candidates == nil {
		result.Candidates = []candidateapimodels.Candidate{}
	}
	result.Total, result.TotalKnown = resp.GetTotal()
	return result, nil
}

func (i impl) Sources(ctx context.Context) ([]string, error) {
	uri := fmt.Sprintf(sourcesPath, i.host)
	logger := log.
		WithField("external_request", uri)

	r, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования запроса")
	}
	resp := listingapimodels.SourcesResponse{}
	if err = i.sendRequest(ctx, logger, r, &resp); err != nil {
		return nil, err
	}
	if resp.Sources == nil {
		return []string{}, nil
	}
	return resp.Sources, nil
}

func (i impl) ApplicationTypes(ctx context.Context) ([]string, error) {
	uri := fmt.Sprintf(applicationTypesPath, i.host)
	logger := log.
		WithField("external_request", uri)

	r, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования запроса")
	}
	resp := listingapimodels.ApplicationTypesResponse{}
	if err = i.sendRequest(ctx, logger, r, &resp); err != nil {
		return nil, err
	}
	if resp.ApplicationType == nil {
		return []string{}, nil
	}
	return resp.ApplicationType, nil
}

// EncodeQuery параметры запроса listing api, фильтры передаются повторяющимися параметрами
func EncodeQuery(req candidateapimodels.ListRequest) url.Values {
	values := url.Values{}
	values.Set("page", strconv.Itoa(req.Page))
	values.Set("per_page", strconv.Itoa(req.PerPage))
	values.Set("sort_by", string(req.SortBy))
	values.Set("sort_order", string(req.SortOrder))
	if req.Search != "" {
		values.Set("search", req.Search)
	}
	for _, value := range req.ApplicationTypes {
		values.Add("application_type", value)
	}
	for _, value := range req.Sources {
		values.Add("source", value)
	}
	return values
}

func (i impl) sendRequest(ctx context.Context, logger *log.Entry, r *http.Request, resp interface{}) error {
	if err := i.limiter.Wait(ctx); err != nil {
		return errors.Wrap(err, "запрос отменен до отправки")
	}
	r.Header.Add("Accept", "application/json")
	r.Header.Add("User-Agent", "CandidateBrowser/1.0")
	response, err := i.httpClient.Do(r)
	if err != nil {
		logger.WithError(err).Error("ошибка отправки запроса в listing api")
		return errors.Wrap(err, "ошибка отправки запроса в listing api")
	}
	defer response.Body.Close()
	// читаем Body только 1 раз
	responseBody, logger := getResponseBody(logger, response)
	logger = logger.WithField("response_status_code", response.StatusCode)
	if response.StatusCode >= 200 && response.StatusCode < 300 {
		if resp != nil && len(responseBody) != 0 {
			if err = json.Unmarshal(responseBody, resp); err != nil {
				logger.WithError(err).Error("ошибка сериализации ответа")
				return errors.Wrap(err, "ошибка сериализации ответа")
			}
		}
		logger.Debug("запрос в listing api выполнен")
		return nil
	}
	logger.Error("некорректный запрос в listing api")
	errorResp := listingapimodels.ErrorData{}
	if len(responseBody) != 0 && json.Unmarshal(responseBody, &errorResp) == nil && (errorResp.Error != "" || errorResp.Message != "") {
		return errors.Errorf("%s: некорректный запрос, статус %d. Ошибка: %+v", serviceName, response.StatusCode, errorResp)
	}
	return errors.Errorf("%s: некорректный запрос, статус %d", serviceName, response.StatusCode)
}

func getResponseBody(logger *log.Entry, response *http.Response) ([]byte, *log.Entry) {
	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		logger.WithError(err).Warn("ошибка чтения ответа")
	}
	return responseBody, logger.WithField("response_body", string(responseBody))
}
