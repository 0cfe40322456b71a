package metaclient

import (
	"net/http"
	"time"

	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

type Client interface {
	GetCampaignsByAccountID(accountExternalID string, period domain.DateRange) ([]metadomain.PlatformCampaign, error)
	GetAdSetsByAccountID(accountExternalID string, period domain.DateRange) ([]metadomain.PlatformAdSet, error)
	GetAdsByAccountID(accountExternalID string, period domain.DateRange) ([]metadomain.PlatformAd, error)
	// GetCountryInsights retorna o breakdown por país no nível da conta.
	GetCountryInsights(accountExternalID string, period domain.DateRange) ([]metadomain.CountryInsight, error)
	// GetAdCountryInsights retorna o breakdown por país no nível de anúncio.
	GetAdCountryInsights(accountExternalID string, period domain.DateRange) ([]metadomain.CountryInsight, error)
	GetAdCreativeImageURL(creativeRef string) (string, error)
	RefreshToken() error
	EnsureValidToken() error
	HandleResponse(resp *http.Response) ([]byte, error)
}

type MetaClient struct {
	Cfg          *config.Config
	TokenManager *TokenManager
	httpClient   *http.Client
}

func NewClient(cfg *config.Config, tokenManager *TokenManager) Client {
	return &MetaClient{
		Cfg:          cfg,
		TokenManager: tokenManager,
		httpClient:   &http.Client{Timeout: 60 * time.Second},
	}
}

// RefreshToken obtém um novo token de longa duração
func (c *MetaClient) RefreshToken() error {
	return c.TokenManager.RefreshToken()
}

// EnsureValidToken verifica se o token atual é válido e tenta renová-lo se necessário
func (c *MetaClient) EnsureValidToken() error {
	return c.TokenManager.EnsureValidToken()
}

// HandleResponse manipula a resposta HTTP e verifica erros de token expirado
func (c *MetaClient) HandleResponse(resp *http.Response) ([]byte, error) {
	return c.TokenManager.HandleResponse(resp)
}
