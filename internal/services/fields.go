package services

import (
	"fmt"

	"jobboard_backend/pkg/apperrors"
)

// Column allowlists for partial updates. Payload keys are JSON field names
// and match column names one to one.
var (
	companyUpdatableFields = map[string]struct{}{
		"name":         {},
		"hq_city":      {},
		"sector":       {},
		"description":  {},
		"website":      {},
		"social_links": {},
		"headcount":    {},
		"banner_url":   {},
	}

	profileUpdatableFields = map[string]struct{}{
		"first_name":       {},
		"last_name":        {},
		"date_birth":       {},
		"city":             {},
		"phone":            {},
		"diplomas":         {},
		"experiences":      {},
		"experience_years": {},
		"skills":           {},
		"languages":        {},
		"qualities":        {},
		"interests":        {},
		"job_target":       {},
		"motivation":       {},
		"links":            {},
		"avatar_url":       {},
	}

	jobUpdatableFields = map[string]struct{}{
		"title":          {},
		"short_desc":     {},
		"full_desc":      {},
		"location":       {},
		"profile_sought": {},
		"contract_type":  {},
		"work_mode":      {},
		"salary_min":     {},
		"salary_max":     {},
		"currency":       {},
		"tags":           {},
	}
)

// filterFields keeps only allowlisted keys, dropping the rest silently.
// An update that ends up empty is a client error.
func filterFields(payload map[string]interface{}, allowed map[string]struct{}) (map[string]interface{}, error) {
	fields := make(map[string]interface{}, len(payload))
	for k, v := range payload {
		if _, ok := allowed[k]; ok {
			fields[k] = v
		}
	}
	if len(fields) == 0 {
		return nil, apperrors.NewBadRequestError("no valid fields to update")
	}
	return fields, nil
}

// strictFields rejects the whole update when any key falls outside the
// allowlist, so typos never pass as silent no-ops.
func strictFields(payload map[string]interface{}, allowed map[string]struct{}) (map[string]interface{}, error) {
	fields := make(map[string]interface{}, len(payload))
	for k, v := range payload {
		if _, ok := allowed[k]; !ok {
			return nil, apperrors.NewBadRequestError(fmt.Sprintf("unknown field: %s", k))
		}
		fields[k] = v
	}
	if len(fields) == 0 {
		return nil, apperrors.NewBadRequestError("no valid fields to update")
	}
	return fields, nil
}
