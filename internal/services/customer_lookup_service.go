package services

import (
	"context"
	"errors"
	"time"

	"storefront-console/internal/dto"
	"storefront-console/internal/models"
)

// CustomerLookupController searches the directory and, when asked, creates
// the customer it could not find. It owns no view state; everything visible
// goes through the presenter into the search-results region.
type CustomerLookupController struct {
	directory DirectoryClientInterface
	presenter PresenterInterface
	logger    ConsoleLoggerInterface
	metrics   MetricsRecorderInterface
	audit     AuditServiceInterface
}

func NewCustomerLookupController(
	directory DirectoryClientInterface,
	presenter PresenterInterface,
	logger ConsoleLoggerInterface,
	metrics MetricsRecorderInterface,
	audit AuditServiceInterface,
) CustomerLookupControllerInterface {
	return &CustomerLookupController{
		directory: directory,
		presenter: presenter,
		logger:    logger,
		metrics:   metrics,
		audit:     audit,
	}
}

// Lookup runs one search, and at most one create afterwards. An empty
// criteria is still sent. A create is only attempted when the directory
// reported no match, createIfMissing is set and name, surname and email
// are all present.
func (c *CustomerLookupController) Lookup(ctx context.Context, criteria models.SearchCriteria, createIfMissing bool) *models.LookupResult {
	start := time.Now()
	criteria = criteria.Normalize()

	result := models.NewLookupResult(criteria, createIfMissing)
	result.Token = c.presenter.Begin(models.RegionSearchResults)

	c.logger.LogLookupStarted(ctx, criteria, createIfMissing, result.Token)

	c.show(ctx, result, models.Info(MsgSearching))
	result.Advance(models.LookupSearching)

	resp, err := c.directory.SearchCustomers(ctx, criteria)
	if err != nil {
		c.logger.LogTransportError(ctx, "search customers", err)
		result.Err = err
		result.Advance(models.LookupFailed)
		c.show(ctx, result, models.Failure(MsgSearchFailed))
		result.Advance(models.LookupRendered)
		c.finish(ctx, result, start, 0)
		return result
	}

	if resp.Error != "" {
		outcome := models.NotFound(resp.Error)
		result.Outcome = &outcome
		result.Advance(models.LookupNotFound)
		c.show(ctx, result, models.Failure(resp.Error))

		if !createIfMissing {
			result.Advance(models.LookupNotFoundRendered)
			c.finish(ctx, result, start, 0)
			return result
		}

		c.create(ctx, result)
		result.Advance(models.LookupRendered)
		c.finish(ctx, result, start, 0)
		return result
	}

	outcome := models.Found(resp.Customers)
	result.Outcome = &outcome
	result.Advance(models.LookupFound)
	c.show(ctx, result, customerCards(resp.Customers))
	result.Advance(models.LookupRendered)
	c.finish(ctx, result, start, len(resp.Customers))

	return result
}

// create is the fallback after a NotFound outcome. The created record is
// not fetched back into the results.
func (c *CustomerLookupController) create(ctx context.Context, result *models.LookupResult) {
	criteria := result.Criteria

	if !criteria.HasIdentity() {
		result.Err = &ValidationError{Message: MsgIdentityRequired, Fields: missingIdentityFields(criteria)}
		c.logger.LogValidationFailure(ctx, "add customer", result.Err.Error())
		c.show(ctx, result, models.Failure(MsgIdentityRequired))
		c.recordCreate(ctx, result, models.AuditOutcomeValidationError)
		return
	}

	result.Advance(models.LookupCreating)

	resp, err := c.directory.AddCustomer(ctx, dto.AddCustomerRequest{
		Name:    criteria.Name,
		Surname: criteria.Surname,
		Email:   criteria.Email,
	})

	if err == nil && resp != nil && !resp.Success {
		err = &DomainError{Op: "add customer", Message: resp.Error}
	}

	var domainErr *DomainError
	switch {
	case err == nil:
		result.Advance(models.LookupCreated)
		c.show(ctx, result, models.Success(MsgCustomerAdded))

	case errors.As(err, &domainErr):
		result.Err = err
		result.Advance(models.LookupCreateFailed)
		message := domainErr.Message
		if message == "" {
			message = MsgCustomerAddFailed
		}
		c.show(ctx, result, models.Failure(message))

	default:
		result.Err = err
		result.Advance(models.LookupCreateFailed)
		c.logger.LogTransportError(ctx, "add customer", err)
		c.show(ctx, result, models.Failure(MsgCustomerAddError))
	}

	outcome := outcomeOf(result.Err)
	c.logger.LogFallbackCreate(ctx, criteria.Email, outcome)
	c.metrics.IncrementCounter(MetricFallbackCreate, map[string]string{"outcome": outcome})
	c.recordCreate(ctx, result, outcome)
}

// show renders instr for this lookup. A render refused by the presenter
// means a newer lookup owns the region.
func (c *CustomerLookupController) show(ctx context.Context, result *models.LookupResult, instr models.RenderInstruction) {
	instr = instr.WithToken(result.Token)
	result.Render = instr

	if !c.presenter.Render(models.RegionSearchResults, instr) {
		result.Discarded = true
		c.logger.LogStaleRenderDiscarded(ctx, models.RegionSearchResults, result.Token)
		c.metrics.IncrementCounter(MetricStaleRenderDiscarded, nil)
	}
}

func (c *CustomerLookupController) finish(ctx context.Context, result *models.LookupResult, start time.Time, resultsCount int) {
	duration := time.Since(start)
	state := result.State()

	searchOutcome := models.AuditOutcomeSuccess
	switch {
	case result.Outcome == nil:
		searchOutcome = models.AuditOutcomeTransportError
		c.logger.LogLookupFailed(ctx, result.Err.Error(), duration.Milliseconds())
	case result.Outcome.IsNotFound():
		searchOutcome = models.AuditOutcomeDomainError
		c.logger.LogLookupCompleted(ctx, state, 0, duration.Milliseconds())
	default:
		c.logger.LogLookupCompleted(ctx, state, resultsCount, duration.Milliseconds())
	}

	c.metrics.IncrementCounter(MetricCustomerLookup, map[string]string{"outcome": lookupOutcome(result)})
	c.metrics.IncrementCounter(MetricConsoleAction, map[string]string{"action": models.AuditActionCustomerSearch, "outcome": searchOutcome})
	c.metrics.RecordProcessingTime(MetricConsoleAction+":"+models.AuditActionCustomerSearch, duration)

	entry := AuditEntry{
		Action:   models.AuditActionCustomerSearch,
		Resource: models.AuditResourceCustomer,
		Outcome:  searchOutcome,
		Metadata: models.JSONBMap{
			"criteria_fields":   criteriaFields(result.Criteria),
			"create_if_missing": result.CreateIfMissing,
			"results":           resultsCount,
			"state":             string(state),
		},
	}
	if result.Discarded {
		entry.Metadata["discarded"] = true
	}
	c.audit.Record(ctx, entry)
}

func (c *CustomerLookupController) recordCreate(ctx context.Context, result *models.LookupResult, outcome string) {
	action := models.AuditActionCustomerCreateFailed
	if outcome == models.AuditOutcomeSuccess {
		action = models.AuditActionCustomerCreated
	}

	c.audit.Record(ctx, AuditEntry{
		Action:     action,
		Resource:   models.AuditResourceCustomer,
		ResourceID: result.Criteria.Email,
		Outcome:    outcome,
	})
}

// lookupOutcome names the branch a lookup ended in
func lookupOutcome(result *models.LookupResult) string {
	for i := len(result.States) - 1; i >= 0; i-- {
		switch s := result.States[i]; s {
		case models.LookupFound, models.LookupFailed, models.LookupCreated, models.LookupCreateFailed, models.LookupNotFoundRendered:
			return string(s)
		}
	}
	if result.Err != nil {
		return outcomeOf(result.Err)
	}
	return string(result.State())
}

func missingIdentityFields(c models.SearchCriteria) []string {
	var missing []string
	if c.Name == "" {
		missing = append(missing, "name")
	}
	if c.Surname == "" {
		missing = append(missing, "surname")
	}
	if c.Email == "" {
		missing = append(missing, "email")
	}
	return missing
}
