package openrouter

import (
	stderrs "errors"
	"net/http"

	perr "storyweaver/internal/platform/errors"

	openai "github.com/sashabaranov/go-openai"
)

// Wire messages surfaced to API callers. Keep these stable, clients match on them
const (
	msgBadKey      = "Invalid OpenRouter API key. Please check your key and try again."
	msgBadModel    = "Model not found on OpenRouter. Try a different model."
	msgRateLimited = "Rate limit exceeded. Please wait and try again."
	msgGeneric     = "Failed to generate story: "
)

// classify maps a provider or transport failure onto the project error taxonomy.
// Status drives the mapping; everything unrecognized is a generic provider failure
func classify(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *openai.APIError
	if stderrs.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case http.StatusUnauthorized:
			return perr.Wrap(err, perr.ErrorCodeProviderAuth, msgBadKey)
		case http.StatusNotFound:
			return perr.Wrap(err, perr.ErrorCodeProviderModel, msgBadModel)
		case http.StatusTooManyRequests:
			return perr.Wrap(err, perr.ErrorCodeProviderRateLimited, msgRateLimited)
		}
		return perr.Wrapf(err, perr.ErrorCodeProvider, "%s%s", msgGeneric, apiErr.Message)
	}

	var reqErr *openai.RequestError
	if stderrs.As(err, &reqErr) {
		switch reqErr.HTTPStatusCode {
		case http.StatusUnauthorized:
			return perr.Wrap(err, perr.ErrorCodeProviderAuth, msgBadKey)
		case http.StatusNotFound:
			return perr.Wrap(err, perr.ErrorCodeProviderModel, msgBadModel)
		case http.StatusTooManyRequests:
			return perr.Wrap(err, perr.ErrorCodeProviderRateLimited, msgRateLimited)
		}
	}

	// transport failures, timeouts, cancellations: all generic provider errors
	return perr.Wrapf(err, perr.ErrorCodeProvider, "%s%v", msgGeneric, err)
}
