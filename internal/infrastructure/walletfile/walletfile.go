package walletfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/samber/lo"

	"wallet_checker/internal/domain"
	"wallet_checker/pkg/errcodes"
)

const DefaultPath = "wallet.txt"

const byteOrderMark = "\ufeff"

// Read loads the address list from path.
func Read(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.WrapError(err, errcodes.WalletFileMissing, fmt.Sprintf("wallet file %s not found", path))
		}

		return nil, domain.WrapError(err, errcodes.WalletFileUnreadable, fmt.Sprintf("read wallet file %s", path))
	}

	return ParseAddresses(string(content)), nil
}

// ParseAddresses returns one trimmed address per non-blank line, in file
// order. Addresses are not validated.
func ParseAddresses(content string) []string {
	content = strings.TrimPrefix(content, byteOrderMark)

	return lo.FilterMap(strings.Split(content, "\n"), func(line string, _ int) (string, bool) {
		address := strings.TrimSpace(line)
		return address, address != ""
	})
}
