package syncing

import (
	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

// AdsSource é o contrato que o orquestrador espera da integração com a
// plataforma de anúncios. As entidades já vêm com os insights diários do
// período anexados.
type AdsSource interface {
	FetchCampaigns(accountExternalID string, period domain.DateRange) ([]metadomain.PlatformCampaign, error)
	FetchAdSets(accountExternalID string, period domain.DateRange) ([]metadomain.PlatformAdSet, error)
	FetchAds(accountExternalID string, period domain.DateRange) ([]metadomain.PlatformAd, error)
	FetchCountryBreakdown(accountExternalID string, period domain.DateRange) ([]metadomain.CountryInsight, error)
	FetchAdCountryBreakdown(accountExternalID string, period domain.DateRange) ([]metadomain.CountryInsight, error)
	FetchAdCreativeImageURL(creativeRef string) (string, error)
}
