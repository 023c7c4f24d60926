package requirements

import (
	"testing"
	"time"

	"github.com/zXpect/Panel-admln-ADS-backend/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doc(status string) map[string]interface{} {
	return map[string]interface{}{
		"fileName":   "file.pdf",
		"status":     status,
		"uploadedAt": float64(1700000000000),
		"reviewedAt": float64(0),
	}
}

func letters(n int) map[string]interface{} {
	out := map[string]interface{}{}
	for i := 0; i < n; i++ {
		out[string(rune('a'+i))] = doc("pending")
	}
	return out
}

func tree(raw map[string]interface{}) *entity.WorkerDocuments {
	return entity.ParseWorkerDocuments("w1", raw, time.UTC)
}

func TestEvaluate_EmptyTree(t *testing.T) {
	for _, policy := range []Policy{PolicyStrict, PolicyLenient} {
		e := NewEvaluator(policy)

		assert.Equal(t, entity.RequirementSnapshot{}, e.Evaluate(nil))
		assert.Equal(t, entity.RequirementSnapshot{}, e.Evaluate(tree(nil)))
		assert.Equal(t, entity.RequirementSnapshot{}, e.Evaluate(tree(map[string]interface{}{
			"unrelated": map[string]interface{}{"x": doc("pending")},
		})))
	}
}

func TestEvaluate_ThreeCartasNoTitulo(t *testing.T) {
	raw := map[string]interface{}{
		entity.CategoryHojaDeVida:   doc("approved"),
		entity.CategoryAntecedentes: doc("pending"),
		entity.CategoryCertificaciones: map[string]interface{}{
			entity.SubcategoryTitulos: map[string]interface{}{},
			entity.SubcategoryCartas:  letters(3),
		},
	}

	strict := NewEvaluator(PolicyStrict).Evaluate(tree(raw))
	assert.True(t, strict.HasHojaVida)
	assert.True(t, strict.HasAntecedentes)
	assert.False(t, strict.HasTitulo)
	assert.Equal(t, 3, strict.CartasCount)
	assert.True(t, strict.HasMinimumCartas)
	assert.False(t, strict.IsComplete, "strict needs a título as well as the cartas")

	lenient := NewEvaluator(PolicyLenient).Evaluate(tree(raw))
	assert.True(t, lenient.IsComplete, "lenient accepts cartas alone")

	// the default is the strict rule
	assert.Equal(t, strict, NewEvaluator("").Evaluate(tree(raw)))
}

func TestEvaluate_Policies(t *testing.T) {
	tests := []struct {
		name        string
		raw         map[string]interface{}
		wantStrict  bool
		wantLenient bool
	}{
		{
			name: "everything present",
			raw: map[string]interface{}{
				entity.CategoryHojaDeVida:   doc("approved"),
				entity.CategoryAntecedentes: doc("approved"),
				entity.CategoryCertificaciones: map[string]interface{}{
					entity.SubcategoryTitulos: letters(1),
					entity.SubcategoryCartas:  letters(4),
				},
			},
			wantStrict:  true,
			wantLenient: true,
		},
		{
			name: "titulo but two cartas",
			raw: map[string]interface{}{
				entity.CategoryHojaDeVida:   doc("approved"),
				entity.CategoryAntecedentes: doc("approved"),
				entity.CategoryCertificaciones: map[string]interface{}{
					entity.SubcategoryTitulos: letters(1),
					entity.SubcategoryCartas:  letters(2),
				},
			},
			wantStrict:  false,
			wantLenient: true,
		},
		{
			name: "missing antecedentes",
			raw: map[string]interface{}{
				entity.CategoryHojaDeVida: doc("approved"),
				entity.CategoryCertificaciones: map[string]interface{}{
					entity.SubcategoryTitulos: letters(1),
					entity.SubcategoryCartas:  letters(3),
				},
			},
			wantStrict:  false,
			wantLenient: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStrict, NewEvaluator(PolicyStrict).Evaluate(tree(tt.raw)).IsComplete)
			assert.Equal(t, tt.wantLenient, NewEvaluator(PolicyLenient).Evaluate(tree(tt.raw)).IsComplete)
		})
	}
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("")
	require.NoError(t, err)
	assert.Equal(t, PolicyStrict, p)

	p, err = ParsePolicy(" Lenient ")
	require.NoError(t, err)
	assert.Equal(t, PolicyLenient, p)

	_, err = ParsePolicy("either")
	assert.Error(t, err)
}

func TestEvaluate_CountsEveryStoredEntry(t *testing.T) {
	raw := map[string]interface{}{
		entity.CategoryCertificaciones: map[string]interface{}{
			entity.SubcategoryTitulos: map[string]interface{}{"t1": "legacy"},
			entity.SubcategoryCartas: map[string]interface{}{
				"c1": doc("pending"),
				"c2": "legacy",
				"c3": float64(1),
			},
		},
	}

	snap := NewEvaluator(PolicyStrict).Evaluate(tree(raw))
	assert.True(t, snap.HasTitulo)
	assert.Equal(t, 3, snap.CartasCount)
	assert.True(t, snap.HasMinimumCartas)
}
