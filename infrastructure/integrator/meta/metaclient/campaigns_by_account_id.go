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

type ResponseCampaigns struct {
	Data   []metadomain.PlatformCampaign `json:"data"`
	Paging metadomain.Paging             `json:"paging"`
}

func (c *MetaClient) GetCampaignsByAccountID(accountExternalID string, period domain.DateRange) ([]metadomain.PlatformCampaign, error) {
	// Garantir que o token seja válido antes de fazer a requisição
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	baseURL := fmt.Sprintf("%s/act_%s/campaigns", c.Cfg.Meta.URL, accountExternalID)

	insightsField := fmt.Sprintf(
		"insights.time_range({\"since\":\"%s\",\"until\":\"%s\"}).time_increment(1){date_start,spend,impressions,reach,clicks,frequency,actions,action_values}",
		period.Start.Format(time.DateOnly),
		period.End.Format(time.DateOnly),
	)

	params := url.Values{}
	params.Add("fields", "id,name,status,daily_budget,"+insightsField)
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
		// Se o token foi renovado durante a chamada, tentar novamente
		if err.Error() == "token expirado e renovado, por favor tente novamente" {
			return c.GetCampaignsByAccountID(accountExternalID, period)
		}
		return nil, err
	}

	var response ResponseCampaigns
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return response.Data, nil
}
