package board

import (
	"strconv"
	"strings"
	"unicode"
)

// StartFEN is the FEN string for the standard initial chess position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Castling rights bit flags
type CastlingRights uint8

const (
	// White king-side (short) castling
	CastlingWhiteK CastlingRights = 1 << iota
	// White queen-side (long) castling
	CastlingWhiteQ
	// Black king-side castling
	CastlingBlackK
	// Black queen-side castling
	CastlingBlackQ
)

// Position is a decoded FEN record: piece placement plus the game-state fields.
type Position struct {
	Pieces         Occupancy
	SideToMove     Color
	Castling       CastlingRights
	EnPassant      Square // NoSquare if no en passant capture is possible
	HalfmoveClock  uint16
	FullmoveNumber uint16
}

// StartPosition returns the standard initial position.
func StartPosition() *Position {
	p, err := DecodeFEN(StartFEN)
	if err != nil {
		panic(err)
	}
	return p
}

// DecodeFEN parses a FEN string. Every malformed field is reported with a typed error
// carrying the offending value; see errors.go.
func DecodeFEN(fen string) (*Position, error) {
	// [ piece placement, active color, castling rights, en passant target, halfmoves, fullmoves ]
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, &FieldCountError{Fields: len(fields)}
	}

	pos := &Position{EnPassant: NoSquare}
	var err error
	if pos.Pieces, err = decodePlacement(fields[0]); err != nil {
		return nil, err
	}
	if pos.SideToMove, err = decodeActiveColor(fields[1]); err != nil {
		return nil, err
	}
	if pos.Castling, err = decodeCastling(fields[2]); err != nil {
		return nil, err
	}
	if pos.EnPassant, err = decodeEnPassant(fields[3]); err != nil {
		return nil, err
	}
	if pos.HalfmoveClock, err = decodeMoveCount(fields[4]); err != nil {
		return nil, err
	}
	if pos.FullmoveNumber, err = decodeMoveCount(fields[5]); err != nil {
		return nil, err
	}
	return pos, nil
}

func decodePlacement(placement string) (Occupancy, error) {
	var occ Occupancy
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return occ, &RankCountError{Ranks: len(ranks)}
	}

	var widths [8]int
	total := 0
	for i, rankStr := range ranks {
		rank := Rank(7 - i) // first rank listed is rank 8
		file := 0
		for _, ch := range rankStr {
			switch {
			case ch >= '1' && ch <= '8':
				// Digit: skip that many files (empty squares)
				file += int(ch - '0')
			case unicode.IsLetter(ch):
				p, ok := pieceFromChar(ch)
				if !ok {
					return occ, &PieceCharError{Char: ch}
				}
				if file < 8 {
					occ[p.Color][p.Kind] |= NewSquare(File(file), rank).Bitboard()
				}
				file++
			default:
				return occ, &SquareCharError{Char: ch}
			}
		}
		widths[rank] = file
		total += file
	}

	if total != NumSquares {
		return occ, &SquareCountError{Count: total}
	}
	for r := Rank8; r >= Rank1; r-- {
		if widths[r] != 8 {
			return occ, &RankWidthError{Rank: r, Width: widths[r]}
		}
	}
	return occ, nil
}

func decodeActiveColor(s string) (Color, error) {
	switch s {
	case "w":
		return White, nil
	case "b":
		return Black, nil
	default:
		return White, &ActiveColorError{Color: s}
	}
}

func decodeCastling(s string) (CastlingRights, error) {
	if s == "-" {
		return 0, nil
	}
	var cr CastlingRights
	for _, ch := range s {
		switch ch {
		case 'K':
			cr |= CastlingWhiteK
		case 'Q':
			cr |= CastlingWhiteQ
		case 'k':
			cr |= CastlingBlackK
		case 'q':
			cr |= CastlingBlackQ
		default:
			return 0, &CastlingError{Rights: s}
		}
	}
	return cr, nil
}

func decodeEnPassant(s string) (Square, error) {
	if s == "-" {
		return NoSquare, nil
	}
	sq, err := ParseSquare(s)
	if err != nil || (sq.Rank() != Rank3 && sq.Rank() != Rank6) {
		return NoSquare, &EnPassantError{Square: s}
	}
	return sq, nil
}

func decodeMoveCount(s string) (uint16, error) {
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, &MoveCountError{Field: s}
	}
	return uint16(n), nil
}

// FEN encodes the position back into a FEN string.
func (p *Position) FEN() string {
	var sb strings.Builder

	// 1. Piece placement
	for rank := Rank8; rank >= Rank1; rank-- {
		emptyCount := 0
		for file := FileA; file <= FileH; file++ {
			pc, ok := p.Pieces.PieceAt(NewSquare(file, rank))
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte('0' + byte(emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(pc.Char())
		}
		if emptyCount > 0 {
			sb.WriteByte('0' + byte(emptyCount))
		}
		if rank > Rank1 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')

	// 2. Side to move
	if p.SideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')

	// 3. Castling rights
	if p.Castling == 0 {
		sb.WriteByte('-')
	} else {
		if p.Castling&CastlingWhiteK != 0 {
			sb.WriteByte('K')
		}
		if p.Castling&CastlingWhiteQ != 0 {
			sb.WriteByte('Q')
		}
		if p.Castling&CastlingBlackK != 0 {
			sb.WriteByte('k')
		}
		if p.Castling&CastlingBlackQ != 0 {
			sb.WriteByte('q')
		}
	}
	sb.WriteByte(' ')

	// 4. En passant square
	sb.WriteString(p.EnPassant.String())
	sb.WriteByte(' ')

	// 5. Halfmove clock, 6. Fullmove number
	sb.WriteString(strconv.FormatUint(uint64(p.HalfmoveClock), 10))
	sb.WriteByte(' ')
	sb.WriteString(strconv.FormatUint(uint64(p.FullmoveNumber), 10))
	return sb.String()
}
