package snowflakeid

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewLayout(t *testing.T) {
	type args struct {
		epoch    int64
		nodeBits uint8
		stepBits uint8
	}
	tests := []struct {
		name         string
		args         args
		wantTimeBits uint8
		wantErr      error
	}{
		{"defaults", args{DefaultEpoch, DefaultNodeBits, DefaultStepBits}, 41, nil},
		{"all step bits", args{DefaultEpoch, 0, 62}, 1, nil},
		{"all node bits", args{DefaultEpoch, 62, 0}, 1, nil},
		{"no node or step bits", args{0, 0, 0}, 63, nil},
		{"node and step bits leave no timestamp", args{DefaultEpoch, 40, 23}, 0, ErrBitRange},
		{"uint8 sum can't wrap", args{DefaultEpoch, 200, 100}, 0, ErrBitRange},
		{"negative epoch", args{-1, 10, 12}, 0, ErrEpochRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := NewLayout(tt.args.epoch, tt.args.nodeBits, tt.args.stepBits)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantTimeBits, l.TimeBits())
			require.Equal(t, int64(1)<<tt.args.nodeBits-1, l.NodeMax())
			require.Equal(t, int64(1)<<tt.args.stepBits-1, l.StepMax())
			require.Equal(t, int64(1)<<tt.wantTimeBits-1, l.DeltaMax())
		})
	}
}

func TestLayout_Split(t *testing.T) {
	l, err := NewLayout(DefaultEpoch, DefaultNodeBits, DefaultStepBits)
	require.NoError(t, err)

	type want struct {
		delta, node, seq int64
	}
	tests := []struct {
		name string
		id   ID
		want want
	}{
		{"zero", 0, want{0, 0, 0}},
		{"known", 324932740761784320, want{77470002356, 1, 0}},
		{"1 bits", (1 << 22) | (1 << 12) | 1, want{1, 1, 1}},
		{"fully f'd", math.MaxInt64, want{(1 << 41) - 1, 1023, 4095}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want.delta, l.TimestampOf(tt.id))
			require.Equal(t, tt.want.node, l.NodeOf(tt.id))
			require.Equal(t, tt.want.seq, l.SequenceOf(tt.id))
			require.Equal(t, tt.id, l.Compose(tt.want.delta, tt.want.node, tt.want.seq))
		})
	}
}

func TestLayout_UnixMilli(t *testing.T) {
	l, err := NewLayout(DefaultEpoch, DefaultNodeBits, DefaultStepBits)
	require.NoError(t, err)

	ms, err := l.UnixMilli(324932740761784320)
	require.NoError(t, err)
	require.Equal(t, int64(1592234802356), ms)
	require.Equal(t, time.Date(2020, 6, 15, 15, 26, 42, 356_000_000, time.UTC), l.Time(324932740761784320))
	require.Equal(t, time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC), l.EpochTime())

	// an epoch this late means the largest timestamp overflows unix milliseconds
	late, err := NewLayout(math.MaxInt64-10, 0, 0)
	require.NoError(t, err)
	_, err = late.UnixMilli(11)
	require.ErrorIs(t, err, ErrMilliEpochOverflow)
	require.True(t, late.Time(11).IsZero())
}

func TestLayout_Delta(t *testing.T) {
	l, err := NewLayout(1000, 31, 31)
	require.NoError(t, err)

	d, err := l.Delta(1001)
	require.NoError(t, err)
	require.Equal(t, int64(1), d)

	_, err = l.Delta(999)
	require.ErrorIs(t, err, ErrEpochRange)

	_, err = l.Delta(1002)
	require.ErrorIs(t, err, ErrTimestampOverflow)
}
