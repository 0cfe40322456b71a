package metaclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
)

type ResponseAdCreative struct {
	ID           string `json:"id"`
	ImageURL     string `json:"image_url"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// GetAdCreativeImageURL busca a URL da imagem do criativo. Retorna string
// vazia sem erro quando o criativo não tem imagem.
func (c *MetaClient) GetAdCreativeImageURL(creativeRef string) (string, error) {
	if err := c.EnsureValidToken(); err != nil {
		return "", fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	baseURL := fmt.Sprintf("%s/%s", c.Cfg.Meta.URL, creativeRef)

	params := url.Values{}
	params.Add("fields", "id,image_url,thumbnail_url")
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	requestURL := baseURL + "?" + params.Encode()

	req, err := http.NewRequest("GET", requestURL, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return "", err
	}
	defer resp.Body.Close()

	body, err := c.HandleResponse(resp)
	if err != nil {
		if err.Error() == "token expirado e renovado, por favor tente novamente" {
			return c.GetAdCreativeImageURL(creativeRef)
		}
		return "", err
	}

	var response ResponseAdCreative
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return "", err
	}

	if response.ImageURL != "" {
		return response.ImageURL, nil
	}

	return response.ThumbnailURL, nil
}
