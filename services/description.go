package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// Multilingual description set produced by the generator, plus a short
// marketing slug suggestion.
type TourDescription struct {
	ES   string `json:"es"`
	EN   string `json:"en"`
	DE   string `json:"de"`
	FR   string `json:"fr"`
	Slug string `json:"slug"`
}

var descriptionHTTPClient = &http.Client{Timeout: 30 * time.Second}

// GenerateTourDescription asks the generative API for a professional tour
// description in the four site languages. The storage layer never calls
// this; the dashboard does, and stores whatever comes back.
func GenerateTourDescription(title, keywords string) (*TourDescription, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY no está configurada")
	}

	prompt := fmt.Sprintf(`Genera una descripción profesional y atractiva para un tour en Costa Rica llamado "%s". `+
		`Usa estas palabras clave: %s. Enfócate en atraer turismo internacional. `+
		`Además, genera un "slug" (2-3 palabras separadas por guiones) atractivo para un link de marketing. `+
		`Responde únicamente con un objeto JSON con los campos es, en, de, fr y slug.`, title, keywords)

	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{"parts": []map[string]string{{"text": prompt}}},
		},
		"generationConfig": map[string]interface{}{
			"responseMimeType": "application/json",
		},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	endpoint := "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent?key=" + apiKey
	req, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := descriptionHTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("generador de descripciones respondió %d: %s", res.StatusCode, string(body))
	}

	var genRes struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(body, &genRes); err != nil {
		return nil, err
	}
	if len(genRes.Candidates) == 0 || len(genRes.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("el generador no devolvió contenido")
	}

	var description TourDescription
	if err := json.Unmarshal([]byte(genRes.Candidates[0].Content.Parts[0].Text), &description); err != nil {
		return nil, fmt.Errorf("respuesta del generador no es JSON válido: %w", err)
	}
	return &description, nil
}
