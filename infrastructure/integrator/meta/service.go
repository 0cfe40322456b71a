package meta

import (
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

// Integrator adapta a API do Meta ao contrato de sincronização. As entidades
// chegam com a sub-consulta diária de insights já anexada.
type Integrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *Integrator {
	return &Integrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *Integrator) FetchCampaigns(accountExternalID string, period domain.DateRange) ([]metadomain.PlatformCampaign, error) {
	campaigns, err := s.Client.GetCampaignsByAccountID(accountExternalID, period)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_external_id": accountExternalID,
			"error":               err.Error(),
		}).Error("sync: falha ao buscar campanhas na API")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"account_external_id": accountExternalID,
		"count":               len(campaigns),
	}).Debug("sync: campanhas obtidas da API")

	return campaigns, nil
}

func (s *Integrator) FetchAdSets(accountExternalID string, period domain.DateRange) ([]metadomain.PlatformAdSet, error) {
	adSets, err := s.Client.GetAdSetsByAccountID(accountExternalID, period)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_external_id": accountExternalID,
			"error":               err.Error(),
		}).Error("sync: falha ao buscar conjuntos de anúncios na API")
		return nil, err
	}

	return adSets, nil
}

func (s *Integrator) FetchAds(accountExternalID string, period domain.DateRange) ([]metadomain.PlatformAd, error) {
	ads, err := s.Client.GetAdsByAccountID(accountExternalID, period)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_external_id": accountExternalID,
			"error":               err.Error(),
		}).Error("sync: falha ao buscar anúncios na API")
		return nil, err
	}

	return ads, nil
}

func (s *Integrator) FetchCountryBreakdown(accountExternalID string, period domain.DateRange) ([]metadomain.CountryInsight, error) {
	insights, err := s.Client.GetCountryInsights(accountExternalID, period)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_external_id": accountExternalID,
			"error":               err.Error(),
		}).Error("sync: falha ao buscar breakdown por país na API")
		return nil, err
	}

	return insights, nil
}

func (s *Integrator) FetchAdCountryBreakdown(accountExternalID string, period domain.DateRange) ([]metadomain.CountryInsight, error) {
	insights, err := s.Client.GetAdCountryInsights(accountExternalID, period)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_external_id": accountExternalID,
			"error":               err.Error(),
		}).Error("sync: falha ao buscar breakdown por país dos anúncios na API")
		return nil, err
	}

	return insights, nil
}

func (s *Integrator) FetchAdCreativeImageURL(creativeRef string) (string, error) {
	return s.Client.GetAdCreativeImageURL(creativeRef)
}

// ParseEntityStatus traduz o status da plataforma para o domínio. Qualquer
// coisa diferente de ACTIVE vira paused, como no dashboard.
func ParseEntityStatus(status string) domain.EntityStatus {
	if status == "ACTIVE" {
		return domain.EntityStatusActive
	}
	return domain.EntityStatusPaused
}

// ParseBudget converte o daily_budget, que a API entrega em centavos.
func ParseBudget(raw string) *float64 {
	if raw == "" {
		return nil
	}
	cents := metadomain.ParseFloatSafe(raw)
	if cents == 0 {
		return nil
	}
	budget := cents / 100
	return &budget
}

// ParseInsightDate converte a data date_start de um registro diário.
func ParseInsightDate(raw string) (time.Time, error) {
	return time.Parse(time.DateOnly, raw)
}
