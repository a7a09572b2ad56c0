package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"talentsched/core/config"
	"talentsched/core/logger"
	"talentsched/modules/calendar/entity"
	"talentsched/modules/calendar/repository"
	schedulerentity "talentsched/modules/scheduler/entity"
	schedulerservice "talentsched/modules/scheduler/service"
)

const googleFreeBusyAPI = "https://www.googleapis.com/calendar/v3/freeBusy"

// tokens are refreshed slightly before they expire
const tokenExpirySkew = 5 * time.Minute

type busyPeriod struct {
	Start time.Time
	End   time.Time
}

// googleGateway decorates an availability gateway with freebusy data from
// Google Calendar. Sync failures never fail a scheduling run; the affected
// participant just falls back to store data.
type googleGateway struct {
	inner       schedulerservice.AvailabilityGateway
	repo        repository.CalendarRepositoryInterface
	client      *http.Client
	freeBusyURL string
	now         func() time.Time
}

func newGoogleGateway(inner schedulerservice.AvailabilityGateway, repo repository.CalendarRepositoryInterface) *googleGateway {
	return &googleGateway{
		inner:       inner,
		repo:        repo,
		client:      &http.Client{Timeout: 30 * time.Second},
		freeBusyURL: googleFreeBusyAPI,
		now:         time.Now,
	}
}

func (g *googleGateway) Gather(ctx context.Context, emails []string, windowStart, windowEnd time.Time) (*schedulerservice.AvailabilityData, error) {
	data, err := g.inner.Gather(ctx, emails, windowStart, windowEnd)
	if err != nil {
		return nil, err
	}

	for _, email := range emails {
		integration, err := g.repo.GetByEmail(ctx, email)
		if err != nil {
			logger.Error("GoogleGateway:Gather:GetByEmail:Error:", err, "email", email)
			continue
		}
		if integration == nil || integration.Provider != "google" || !integration.SyncEnabled {
			continue
		}

		accessToken, err := g.ensureValidToken(ctx, integration)
		if err != nil {
			logger.Error("GoogleGateway:Gather:EnsureValidToken:Error:", err, "email", email)
			continue
		}

		periods, err := g.fetchBusy(ctx, accessToken, email, windowStart, windowEnd)
		if err != nil {
			logger.Error("GoogleGateway:Gather:FreeBusy:Error:", err, "email", email)
			continue
		}

		for _, period := range periods {
			note := "Google Calendar"
			data.BusySlots = append(data.BusySlots, schedulerentity.AvailabilitySlot{
				Email:            email,
				UserType:         integration.UserType,
				StartTime:        period.Start.UTC(),
				EndTime:          period.End.UTC(),
				Timezone:         integration.Timezone,
				AvailabilityType: schedulerentity.AvailabilityBusy,
				Notes:            &note,
				Source:           "google_calendar",
			})
		}

		if err := g.repo.TouchSync(ctx, email, g.now().UTC()); err != nil {
			logger.Error("GoogleGateway:Gather:TouchSync:Error:", err, "email", email)
		}
	}

	return data, nil
}

// ensureValidToken returns a usable access token, refreshing through the
// OAuth endpoint when the stored one is missing or about to expire.
// Refreshed credentials are persisted so the next run skips the round trip.
func (g *googleGateway) ensureValidToken(ctx context.Context, integration *entity.CalendarIntegration) (string, error) {
	if integration.AccessToken != nil && *integration.AccessToken != "" &&
		integration.TokenExpiresAt != nil && g.now().Before(integration.TokenExpiresAt.Add(-tokenExpirySkew)) {
		return *integration.AccessToken, nil
	}

	if integration.RefreshToken == nil || *integration.RefreshToken == "" {
		return "", fmt.Errorf("no refresh token for %s", integration.Email)
	}

	cfg, ok := config.GetSafe()
	if !ok {
		return "", fmt.Errorf("config not initialized")
	}

	oauthConfig := &oauth2.Config{
		ClientID:     cfg.GoogleAPI.ClientID,
		ClientSecret: cfg.GoogleAPI.ClientSecret,
		Endpoint:     google.Endpoint,
	}

	tokenSource := oauthConfig.TokenSource(ctx, &oauth2.Token{
		RefreshToken: *integration.RefreshToken,
	})

	newToken, err := tokenSource.Token()
	if err != nil {
		return "", err
	}

	accessToken := newToken.AccessToken
	refreshToken := *integration.RefreshToken
	if newToken.RefreshToken != "" {
		refreshToken = newToken.RefreshToken
	}
	expiresAt := newToken.Expiry

	integration.AccessToken = &accessToken
	integration.RefreshToken = &refreshToken
	integration.TokenExpiresAt = &expiresAt

	if err := g.repo.SaveTokens(ctx, integration.Email, &accessToken, &refreshToken, &expiresAt); err != nil {
		logger.Error("GoogleGateway:EnsureValidToken:SaveTokens:Error:", err, "email", integration.Email)
	}

	return accessToken, nil
}

// fetchBusy calls the Google Calendar FreeBusy API for a single calendar.
func (g *googleGateway) fetchBusy(ctx context.Context, accessToken, email string, windowStart, windowEnd time.Time) ([]busyPeriod, error) {
	payload := map[string]any{
		"timeMin": windowStart.UTC().Format(time.RFC3339),
		"timeMax": windowEnd.UTC().Format(time.RFC3339),
		"items": []map[string]string{
			{"id": email},
		},
	}

	payloadJSON, _ := json.Marshal(payload)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.freeBusyURL, strings.NewReader(string(payloadJSON)))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("freebusy request failed: %s", string(body))
	}

	var result struct {
		Calendars map[string]struct {
			Busy []struct {
				Start time.Time `json:"start"`
				End   time.Time `json:"end"`
			} `json:"busy"`
		} `json:"calendars"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	var periods []busyPeriod
	if cal, ok := result.Calendars[email]; ok {
		for _, busy := range cal.Busy {
			periods = append(periods, busyPeriod{Start: busy.Start, End: busy.End})
		}
	}
	return periods, nil
}
