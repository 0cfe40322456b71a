package metaclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

type ResponseCountryInsights struct {
	Data   []metadomain.CountryInsight `json:"data"`
	Paging metadomain.Paging           `json:"paging"`
}

// GetCountryInsights busca o breakdown por país agregado no nível da conta.
func (c *MetaClient) GetCountryInsights(accountExternalID string, period domain.DateRange) ([]metadomain.CountryInsight, error) {
	return c.getCountryInsights(accountExternalID, period, "account")
}

// GetAdCountryInsights busca o breakdown por país linha a linha por anúncio.
func (c *MetaClient) GetAdCountryInsights(accountExternalID string, period domain.DateRange) ([]metadomain.CountryInsight, error) {
	return c.getCountryInsights(accountExternalID, period, "ad")
}

func (c *MetaClient) getCountryInsights(accountExternalID string, period domain.DateRange, level string) ([]metadomain.CountryInsight, error) {
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	baseURL := fmt.Sprintf("%s/act_%s/insights", c.Cfg.Meta.URL, accountExternalID)

	timeRange := fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}", period.Start.Format(time.DateOnly), period.End.Format(time.DateOnly))

	fields := "spend,impressions,clicks,actions,action_values"
	if level == "ad" {
		fields = "ad_id," + fields
	}

	params := url.Values{}
	params.Add("fields", fields)
	params.Add("breakdowns", "country")
	params.Add("level", level)
	params.Add("time_range", timeRange)
	params.Add("time_increment", "1")
	params.Add("limit", "500")
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	requestURL := baseURL + "?" + params.Encode()

	req, err := http.NewRequest("GET", requestURL, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := c.HandleResponse(resp)
	if err != nil {
		if err.Error() == "token expirado e renovado, por favor tente novamente" {
			return c.getCountryInsights(accountExternalID, period, level)
		}
		return nil, err
	}

	var response ResponseCountryInsights
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return response.Data, nil
}
