package application

import (
	"sync"

	"github.com/agrwatching/backend-stti-career/internal/model"
)

// enrichment is the per-user pair of collections attached to detail rows.
type enrichment struct {
	WorkExperiences []model.WorkExperience
	Certificates    []model.Certificate
}

// fetchEnrichment reads the work experiences and certificates of one user
// in stable insertion order. Absence of rows is not an error.
func (ac *ApplicationController) fetchEnrichment(userID uint) (enrichment, error) {
	e := enrichment{
		WorkExperiences: []model.WorkExperience{},
		Certificates:    []model.Certificate{},
	}

	if err := ac.DB.Where("user_id = ?", userID).Order("id ASC").Find(&e.WorkExperiences).Error; err != nil {
		return e, err
	}
	if err := ac.DB.Where("user_id = ?", userID).Order("id ASC").Find(&e.Certificates).Error; err != nil {
		return e, err
	}
	return e, nil
}

// fetchEnrichmentAll fans out one fetch per distinct user id and waits for
// all of them. A failure in any fetch fails the whole batch, the caller
// must never respond with partially enriched data.
func (ac *ApplicationController) fetchEnrichmentAll(userIDs []uint) (map[uint]enrichment, error) {
	unique := make([]uint, 0, len(userIDs))
	seen := make(map[uint]bool, len(userIDs))
	for _, id := range userIDs {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		firstErr error
	)
	out := make(map[uint]enrichment, len(unique))

	for _, id := range unique {
		wg.Add(1)
		go func(id uint) {
			defer wg.Done()
			e, err := ac.fetchEnrichment(id)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			out[id] = e
		}(id)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return out, nil
}
