package eval

// FeatureFlags selects which components of Evaluate contribute to the
// returned score.
type FeatureFlags uint8

const (
	MaterialDynamicGamePhase FeatureFlags = 1 << iota
	PieceSquareTable
	PieceMobility
	PawnStructure
	BishopPair
	DynamicPawns
)

// Standard is every feature except DynamicPawns.
const Standard = MaterialDynamicGamePhase | PieceSquareTable | PieceMobility | PawnStructure | BishopPair

// All enables every feature, including the optional ones.
const All FeatureFlags = MaterialDynamicGamePhase | PieceSquareTable | PieceMobility | PawnStructure | BishopPair | DynamicPawns

func (f FeatureFlags) Has(bit FeatureFlags) bool {
	return f&bit != 0
}
