package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCatch(t *testing.T) {
	tests := []struct {
		name       string
		payload    CatchPayload
		wantFields []string
	}{
		{
			name:       "missing species",
			payload:    CatchPayload{UserID: "u1"},
			wantFields: []string{"speciesId"},
		},
		{
			name:       "missing owner",
			payload:    CatchPayload{SpeciesID: "rainbow-trout"},
			wantFields: []string{"userId"},
		},
		{
			name:       "non-numeric weight string",
			payload:    CatchPayload{UserID: "u1", SpeciesID: "rainbow-trout", Weight: "heavy"},
			wantFields: []string{"weight"},
		},
		{
			name:       "non-numeric length",
			payload:    CatchPayload{UserID: "u1", SpeciesID: "rainbow-trout", Length: true},
			wantFields: []string{"length"},
		},
		{
			name:    "valid with numeric strings",
			payload: CatchPayload{UserID: "u1", SpeciesID: "rainbow-trout", Weight: "2.5", Length: "40"},
		},
		{
			name:    "valid without optional numerics",
			payload: CatchPayload{UserID: "u1", SpeciesID: "rainbow-trout"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := ValidateCatch(tt.payload)
			if len(tt.wantFields) > 0 {
				var ve *ValidationError
				require.ErrorAs(t, err, &ve)
				assert.Equal(t, tt.wantFields, ve.Fields)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.payload.UserID, rec.UserID)
			assert.Equal(t, tt.payload.SpeciesID, rec.SpeciesID)
			assert.False(t, rec.IsReleased, "isReleased must default to false")
		})
	}
}

func TestValidateCatchCoercesStrings(t *testing.T) {
	rec, err := ValidateCatch(CatchPayload{UserID: "u1", SpeciesID: "s1", Weight: "2.5"})
	require.NoError(t, err)
	require.NotNil(t, rec.Weight)
	assert.Equal(t, 2.5, *rec.Weight)

	rec, err = ValidateCatch(CatchPayload{UserID: "u1", SpeciesID: "s1", Weight: 3.25})
	require.NoError(t, err)
	require.NotNil(t, rec.Weight)
	assert.Equal(t, 3.25, *rec.Weight)
}

func TestValidateLogbookEntry(t *testing.T) {
	tests := []struct {
		name       string
		payload    LogbookPayload
		wantFields []string
	}{
		{
			name:       "empty fish",
			payload:    LogbookPayload{UserID: "u1", Weight: 2.0, Spot: "See", Gear: "Rute"},
			wantFields: []string{"fish"},
		},
		{
			name:       "non-numeric weight",
			payload:    LogbookPayload{UserID: "u1", Fish: "Hecht", Weight: "schwer", Spot: "See", Gear: "Rute"},
			wantFields: []string{"weight"},
		},
		{
			name:       "zero weight",
			payload:    LogbookPayload{UserID: "u1", Fish: "Hecht", Weight: 0.0, Spot: "See", Gear: "Rute"},
			wantFields: []string{"weight"},
		},
		{
			name:       "negative weight",
			payload:    LogbookPayload{UserID: "u1", Fish: "Hecht", Weight: -1.5, Spot: "See", Gear: "Rute"},
			wantFields: []string{"weight"},
		},
		{
			name:       "everything missing",
			payload:    LogbookPayload{},
			wantFields: []string{"userId", "fish", "spot", "gear", "weight"},
		},
		{
			name:    "valid",
			payload: LogbookPayload{UserID: "u1", Fish: "Hecht", Weight: 3.4, Spot: "Chiemsee", Gear: "Spinnrute"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := ValidateLogbookEntry(tt.payload)
			if len(tt.wantFields) > 0 {
				var ve *ValidationError
				require.ErrorAs(t, err, &ve)
				assert.Equal(t, tt.wantFields, ve.Fields)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 340, rec.Points)
			assert.NotEmpty(t, rec.Date, "date must default to today")
		})
	}
}

func TestValidateLogbookEntryWeightString(t *testing.T) {
	rec, err := ValidateLogbookEntry(LogbookPayload{
		UserID: "u1", Fish: "Karpfen", Weight: "12.5", Spot: "Teich", Gear: "Grundrute",
	})
	require.NoError(t, err)
	assert.Equal(t, 12.5, rec.Weight)
	assert.Equal(t, 1250, rec.Points)
}
