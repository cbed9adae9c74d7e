package cmd

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/AustralianCyberSecurityCentre/azul-rmdup.git/dedupe"
	st "github.com/AustralianCyberSecurityCentre/azul-rmdup.git/settings"
	"github.com/edsrzf/mmap-go"
	"github.com/spf13/cobra"
)

var wide bool

// printHashes writes the hash of every line in content, the final line may lack a newline.
func printHashes(w io.Writer, content []byte) error {
	hasher := dedupe.NewHasher()
	for len(content) > 0 {
		line := content
		next := bytes.IndexByte(content, '\n')
		if next >= 0 {
			line = content[:next]
			content = content[next+1:]
		} else {
			content = nil
		}
		var err error
		if wide {
			h := dedupe.Hash128(line)
			_, err = fmt.Fprintf(w, "%016x%016x\t%s\n", h.Hi, h.Lo, line)
		} else {
			_, err = fmt.Fprintf(w, "%016x\t%s\n", hasher.Sum64(line), line)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// hashFile maps a regular file into memory and prints the hash of each line.
func hashFile(w io.Writer, name string) error {
	file, err := os.Open(name)
	if err != nil {
		return fmt.Errorf("unable to open %s: %w", name, err)
	}
	defer file.Close()
	fi, err := file.Stat()
	if err != nil {
		return fmt.Errorf("unable to stat %s: %w", name, err)
	}
	if fi.IsDir() {
		return fmt.Errorf("%s is a directory", name)
	}
	if !fi.Mode().IsRegular() {
		// pipes and devices cannot be mapped
		content, err := io.ReadAll(file)
		if err != nil {
			return fmt.Errorf("unable to read %s: %w", name, err)
		}
		return printHashes(w, content)
	}
	if fi.Size() == 0 {
		return nil
	}
	mm, err := mmap.Map(file, mmap.RDONLY, 0)
	if err != nil {
		return fmt.Errorf("unable to map %s: %w", name, err)
	}
	err = printHashes(w, mm)
	if unmapErr := mm.Unmap(); unmapErr != nil {
		st.Logger.Warn().Err(unmapErr).Str("file", name).Msg("could not unmap file")
	}
	return err
}

func runHash(in io.Reader, out io.Writer, args []string) error {
	bw := bufio.NewWriter(out)
	for _, name := range args {
		var err error
		if name == "-" {
			var content []byte
			content, err = io.ReadAll(in)
			if err == nil {
				err = printHashes(bw, content)
			}
		} else {
			err = hashFile(bw, name)
		}
		if err != nil {
			bw.Flush()
			return err
		}
	}
	return bw.Flush()
}

// hashCmd represents the hash command
var hashCmd = &cobra.Command{
	Use:   "hash <file>...",
	Short: "Print the hash rmdup uses for each line of the given files",
	Long: `Prints '<hex hash>\t<line>' for each line of each file, '-' reads stdin.

Useful to check why two lines were treated as duplicates. Hashes are
seeded xxHash64, or xxh3 128 bit with --wide to match '--mode wide'.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHash(cmd.InOrStdin(), cmd.OutOrStdout(), args)
	},
}

func init() {
	rootCmd.AddCommand(hashCmd)

	hashCmd.Flags().BoolVar(&wide, "wide", false, "print 128 bit xxh3 hashes")
}
