package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/katalvlaran/cryptology/chaocipher"
	"github.com/katalvlaran/cryptology/foursquare"
	"github.com/katalvlaran/cryptology/mono"
	"github.com/katalvlaran/cryptology/playfair"
	"github.com/katalvlaran/cryptology/twosquare"
)

var (
	cfgFile        string
	cipherName     string
	keys           []string
	shift          int
	affineA        int
	affineB        int
	inputFileName  string
	outputFileName string
)

// keyCount maps each cipher to the number of keys it needs.
var keyCount = map[string]int{
	"playfair":   1,
	"twosquare":  2,
	"foursquare": 4,
	"chaocipher": 2,
	"keyword":    1,
	"caesar":     0,
	"atbash":     0,
	"rot13":      0,
	"affine":     0,
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cryptology",
	Short: "Classical cipher toolbox",
	Long: `cryptology encrypts and decrypts text with classical ciphers:
the digram substitution family (playfair, twosquare, foursquare), the
rotating-disk chaocipher, and the monoalphabetic family (caesar, atbash,
rot13, keyword, affine).`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.cryptology.yaml)")
	rootCmd.PersistentFlags().StringVarP(&cipherName, "cipher", "c", "playfair", "cipher to use (playfair|twosquare|foursquare|chaocipher|caesar|atbash|rot13|keyword|affine)")
	rootCmd.PersistentFlags().StringArrayVarP(&keys, "key", "k", nil, "cipher key; repeat for multi-key ciphers")
	rootCmd.PersistentFlags().IntVarP(&shift, "shift", "s", 3, "shift amount for the caesar cipher")
	rootCmd.PersistentFlags().IntVarP(&affineA, "slope", "a", 5, "multiplicative coefficient for the affine cipher")
	rootCmd.PersistentFlags().IntVarP(&affineB, "intercept", "b", 8, "additive coefficient for the affine cipher")
	rootCmd.PersistentFlags().StringVarP(&inputFileName, "inputFile", "i", "-", "name of the file to read; - for stdin")
	rootCmd.PersistentFlags().StringVarP(&outputFileName, "outputFile", "o", "-", "name of the file to write; - for stdout")

	cobra.CheckErr(viper.BindPFlag("cipher", rootCmd.PersistentFlags().Lookup("cipher")))
	cobra.CheckErr(viper.BindPFlag("shift", rootCmd.PersistentFlags().Lookup("shift")))
	cobra.CheckErr(viper.BindPFlag("slope", rootCmd.PersistentFlags().Lookup("slope")))
	cobra.CheckErr(viper.BindPFlag("intercept", rootCmd.PersistentFlags().Lookup("intercept")))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Search config in home directory with name ".cryptology"
		// (without extension).
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".cryptology")
	}

	viper.SetEnvPrefix("cryptology")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// resolveKeys gathers the keys the selected cipher needs from, in order:
// repeated --key flags, positional arguments, the CRYPTOLOGY_KEYS
// environment/config value (comma separated), and finally an interactive
// terminal prompt.
func resolveKeys(args []string) []string {
	need, ok := keyCount[cipherName]
	if !ok {
		cobra.CheckErr(fmt.Sprintf("unknown cipher: %q", cipherName))
	}

	got := append([]string{}, keys...)
	got = append(got, args...)

	if len(got) == 0 && viper.IsSet("keys") {
		for _, k := range strings.Split(viper.GetString("keys"), ",") {
			if k = strings.TrimSpace(k); k != "" {
				got = append(got, k)
			}
		}
	}

	for len(got) < need {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			cobra.CheckErr(fmt.Sprintf("cipher %q needs %d key(s), got %d", cipherName, need, len(got)))
		}
		fmt.Fprintf(os.Stderr, "Enter key %d of %d: ", len(got)+1, need)
		byteKey, err := term.ReadPassword(int(os.Stdin.Fd()))
		cobra.CheckErr(err)
		fmt.Fprintln(os.Stderr, "")
		if len(byteKey) == 0 {
			cobra.CheckErr("You must supply a key.")
		}
		got = append(got, string(byteKey))
	}
	return got[:need]
}

/*
	getInputAndOutputFiles will return the input and output files to use
	while encrypting/decrypting data. If input and/or output file names
	were given, then those files will be opened. Otherwise stdin and
	stdout are used.
*/
func getInputAndOutputFiles() (*os.File, *os.File) {
	var fin *os.File
	var err error

	if len(inputFileName) > 0 && inputFileName != "-" {
		fin, err = os.Open(inputFileName)
		cobra.CheckErr(err)
	} else {
		fin = os.Stdin
	}

	var fout *os.File

	if len(outputFileName) > 0 && outputFileName != "-" {
		fout, err = os.Create(outputFileName)
		cobra.CheckErr(err)
	} else {
		fout = os.Stdout
	}

	return fin, fout
}

// run reads the whole input, applies the selected cipher in the given
// direction, and writes the result followed by a newline.
func run(encrypt bool, args []string) {
	// The bound viper key lets a config file or CRYPTOLOGY_CIPHER pick
	// the cipher when the flag is absent; the flag wins otherwise.
	cipherName = viper.GetString("cipher")
	k := resolveKeys(args)

	fin, fout := getInputAndOutputFiles()
	defer fout.Close()

	raw, err := io.ReadAll(fin)
	cobra.CheckErr(err)
	text := strings.TrimRight(string(raw), "\n")

	out, err := transform(encrypt, text, k)
	cobra.CheckErr(err)

	_, err = fmt.Fprintln(fout, out)
	cobra.CheckErr(err)
}

// transform dispatches to the cipher packages.
func transform(encrypt bool, text string, k []string) (string, error) {
	switch cipherName {
	case "playfair":
		if encrypt {
			return playfair.Encrypt(text, k[0])
		}
		return playfair.Decrypt(text, k[0])
	case "twosquare":
		if encrypt {
			return twosquare.Encrypt(text, k[0], k[1])
		}
		return twosquare.Decrypt(text, k[0], k[1])
	case "foursquare":
		if encrypt {
			return foursquare.Encrypt(text, k[0], k[1], k[2], k[3])
		}
		return foursquare.Decrypt(text, k[0], k[1], k[2], k[3])
	case "chaocipher":
		left, right := chaocipher.KeywordAlphabets(k[0], k[1])
		if encrypt {
			return chaocipher.Encrypt(text, left, right)
		}
		return chaocipher.Decrypt(text, left, right)
	case "caesar":
		if encrypt {
			return mono.CaesarEncrypt(text, viper.GetInt("shift"))
		}
		return mono.CaesarDecrypt(text, viper.GetInt("shift"))
	case "atbash":
		if encrypt {
			return mono.AtbashEncrypt(text)
		}
		return mono.AtbashDecrypt(text)
	case "rot13":
		if encrypt {
			return mono.ROT13Encrypt(text)
		}
		return mono.ROT13Decrypt(text)
	case "keyword":
		if encrypt {
			return mono.KeywordEncrypt(text, k[0])
		}
		return mono.KeywordDecrypt(text, k[0])
	case "affine":
		if encrypt {
			return mono.AffineEncrypt(text, viper.GetInt("slope"), viper.GetInt("intercept"))
		}
		return mono.AffineDecrypt(text, viper.GetInt("slope"), viper.GetInt("intercept"))
	default:
		return "", fmt.Errorf("unknown cipher: %q", cipherName)
	}
}
