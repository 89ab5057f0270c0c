package domain_test

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"

	"wallet_checker/internal/domain"
	"wallet_checker/pkg/errcodes"
)

func TestAppError(t *testing.T) {
	rq := require.New(t)

	plain := domain.NewError(errcodes.InvalidConfig, "chain is empty")
	rq.Equal("chain is empty", plain.Error())
	rq.NoError(plain.Unwrap())

	wrapped := domain.WrapError(fs.ErrNotExist, errcodes.WalletFileMissing, "read wallet.txt")
	rq.Equal("read wallet.txt: file does not exist", wrapped.Error())
	rq.ErrorIs(wrapped, fs.ErrNotExist)

	outer := fmt.Errorf("walletfile.Read: %w", wrapped)

	code, ok := domain.GetCode(outer)
	rq.True(ok)
	rq.Equal(errcodes.WalletFileMissing, code)
	rq.True(domain.HasCode(outer, errcodes.WalletFileMissing))
	rq.False(domain.HasCode(outer, errcodes.WalletFileUnreadable))

	_, ok = domain.GetCode(errors.New("plain"))
	rq.False(ok)
	rq.False(domain.HasCode(nil, errcodes.InternalError))
}
