package workflow

import (
	"property-service/internal/model"
	"property-service/internal/store"
)

// AttachAgreementDocument records the signed lease document's URL on an
// agreement. This is the only mutation an agreement sees after creation.
func AttachAgreementDocument(st store.Store, actor *model.User, agreementID, documentURL string) (*model.Agreement, error) {
	state, err := st.Load()
	if err != nil {
		return nil, err
	}

	a := state.Agreement(agreementID)
	if a == nil {
		return nil, ErrAgreementNotFound
	}
	if actor.Role == model.RoleTenant && a.TenantID != actor.ID {
		return nil, ErrForbidden
	}

	a.DocumentURL = documentURL

	updated := *a
	if err := st.Save(state); err != nil {
		return nil, err
	}
	return &updated, nil
}
