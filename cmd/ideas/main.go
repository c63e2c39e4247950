// Command ideas is the terminal client for the idea-creator relay. The
// relay holds the model API key; this client only ever sees normalized
// results. Each generated set is cached locally so follow-up commands
// can address entries by their list number.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mhojune/idea-creator/internal/idea"
)

var (
	serverAddr string

	topic    string
	count    int
	category string

	asJSON    bool
	saveList  string
	copyIndex int

	favCategory    string
	favComplexity  string
	favMonetizable bool
	favJSON        bool
)

var rootCmd = &cobra.Command{
	Use:   "ideas",
	Short: "Generate and keep startup ideas from the terminal",
	Long: `ideas talks to the idea-creator relay server.

The relay owns the model API key, so this client carries no credentials.
Generated sets are cached under the user cache directory and can be
referenced by number in follow-up commands (favorite, copy).`,
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a fresh set of ideas",
	Long: `Ask the relay for a new set of ideas and render them as a
numbered list. The set replaces the local cache used by 'last',
'favorite <n>' and 'copy <n>'.

Example:
  ideas generate -t "퇴근 후 부업" -n 5 -c "생산성" --save 1,3 --copy 2`,
	RunE: runGenerate,
}

var lastCmd = &cobra.Command{
	Use:   "last",
	Short: "Show the most recently generated set",
	RunE:  runLast,
}

var favoriteCmd = &cobra.Command{
	Use:   "favorite <n>",
	Short: "Save the n-th cached idea as a favorite",
	Args:  cobra.ExactArgs(1),
	RunE:  runFavorite,
}

var unfavoriteCmd = &cobra.Command{
	Use:   "unfavorite <id>",
	Short: "Remove a favorite by id",
	Args:  cobra.ExactArgs(1),
	RunE:  runUnfavorite,
}

var favoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "List saved favorites",
	RunE:  runFavorites,
}

var copyCmd = &cobra.Command{
	Use:   "copy <n|id>",
	Short: "Copy one idea to the clipboard as markdown",
	Long: `Copy an idea to the system clipboard, formatted as markdown.

Numbers address the cached result set; id_... arguments address saved
favorites.`,
	Args: cobra.ExactArgs(1),
	RunE: runCopy,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverAddr, "server", defaultServerAddr(), "relay server address (or set IDEAS_SERVER)")

	generateCmd.Flags().StringVarP(&topic, "topic", "t", "", "what the ideas should be about (required)")
	generateCmd.Flags().IntVarP(&count, "count", "n", 0, "how many ideas to ask for")
	generateCmd.Flags().StringVarP(&category, "category", "c", "", "restrict ideas to one category")
	generateCmd.Flags().BoolVar(&asJSON, "json", false, "print raw JSON instead of the list")
	generateCmd.Flags().StringVar(&saveList, "save", "", "favorite these entries right away, e.g. 1,3")
	generateCmd.Flags().IntVar(&copyIndex, "copy", 0, "copy this entry to the clipboard right away")
	generateCmd.MarkFlagRequired("topic")

	lastCmd.Flags().BoolVar(&asJSON, "json", false, "print raw JSON instead of the list")

	favoritesCmd.Flags().StringVar(&favCategory, "category", "", "only this category")
	favoritesCmd.Flags().StringVar(&favComplexity, "complexity", "", "only this complexity (Simple, Medium or Hard)")
	favoritesCmd.Flags().BoolVar(&favMonetizable, "monetizable", false, "only monetizable ideas")
	favoritesCmd.Flags().BoolVar(&favJSON, "json", false, "print raw JSON instead of the list")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(lastCmd)
	rootCmd.AddCommand(favoriteCmd)
	rootCmd.AddCommand(unfavoriteCmd)
	rootCmd.AddCommand(favoritesCmd)
	rootCmd.AddCommand(copyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func defaultServerAddr() string {
	if env := os.Getenv("IDEAS_SERVER"); env != "" {
		return env
	}
	return "http://localhost:8787"
}

func runGenerate(cmd *cobra.Command, args []string) error {
	client := newRelayClient(serverAddr)

	ideas, err := client.Generate(cmd.Context(), topic, count, category)
	if err != nil {
		return err
	}

	// A cache failure should not throw away a perfectly good result set.
	if err := saveLast(ideas); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not cache the result set: %v\n", err)
	}

	if asJSON {
		if err := renderJSON(os.Stdout, ideas); err != nil {
			return err
		}
	} else {
		renderList(os.Stdout, ideas)
	}

	if saveList != "" {
		nums, err := parseIndexList(saveList)
		if err != nil {
			return err
		}
		for _, n := range nums {
			it, err := pickByNumber(ideas, n)
			if err != nil {
				return err
			}
			saved, err := client.AddFavorite(cmd.Context(), it)
			if err != nil {
				return err
			}
			fmt.Printf("favorited %d: %s (%s)\n", n, saved.Title, saved.ID)
		}
	}

	if copyIndex > 0 {
		it, err := pickByNumber(ideas, copyIndex)
		if err != nil {
			return err
		}
		if err := copyIdea(it); err != nil {
			return err
		}
		fmt.Printf("copied %d: %s\n", copyIndex, it.Title)
	}

	return nil
}

func runLast(cmd *cobra.Command, args []string) error {
	ideas, err := loadLast()
	if err != nil {
		return err
	}
	if asJSON {
		return renderJSON(os.Stdout, ideas)
	}
	renderList(os.Stdout, ideas)
	return nil
}

func runFavorite(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("favorite takes a list number, got %q", args[0])
	}

	ideas, err := loadLast()
	if err != nil {
		return err
	}
	it, err := pickByNumber(ideas, n)
	if err != nil {
		return err
	}

	client := newRelayClient(serverAddr)
	saved, err := client.AddFavorite(cmd.Context(), it)
	if err != nil {
		return err
	}
	fmt.Printf("favorited: %s (%s)\n", saved.Title, saved.ID)
	return nil
}

func runUnfavorite(cmd *cobra.Command, args []string) error {
	client := newRelayClient(serverAddr)
	if err := client.RemoveFavorite(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Printf("removed: %s\n", args[0])
	return nil
}

func runFavorites(cmd *cobra.Command, args []string) error {
	client := newRelayClient(serverAddr)
	favorites, err := client.Favorites(cmd.Context(), favCategory, favComplexity, favMonetizable)
	if err != nil {
		return err
	}
	if favJSON {
		return renderJSON(os.Stdout, favorites)
	}
	if len(favorites) == 0 {
		fmt.Println("no favorites saved yet")
		return nil
	}
	renderList(os.Stdout, favorites)
	return nil
}

func runCopy(cmd *cobra.Command, args []string) error {
	arg := args[0]

	var it idea.Idea
	if strings.HasPrefix(arg, "id_") {
		client := newRelayClient(serverAddr)
		favorites, err := client.Favorites(cmd.Context(), "", "", false)
		if err != nil {
			return err
		}
		found := false
		for _, f := range favorites {
			if f.ID == arg {
				it, found = f, true
				break
			}
		}
		if !found {
			return fmt.Errorf("no favorite with id %s", arg)
		}
	} else {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("copy takes a list number or an id_... argument, got %q", arg)
		}
		ideas, err := loadLast()
		if err != nil {
			return err
		}
		it, err = pickByNumber(ideas, n)
		if err != nil {
			return err
		}
	}

	if err := copyIdea(it); err != nil {
		return err
	}
	fmt.Printf("copied: %s\n", it.Title)
	return nil
}

// pickByNumber resolves a 1-based list number against a result set.
func pickByNumber(ideas []idea.Idea, n int) (idea.Idea, error) {
	if n < 1 || n > len(ideas) {
		return idea.Idea{}, fmt.Errorf("no entry %d, the list has %d ideas", n, len(ideas))
	}
	return ideas[n-1], nil
}

// parseIndexList parses flag values like "1,3".
func parseIndexList(list string) ([]int, error) {
	parts := strings.Split(list, ",")
	nums := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("--save takes list numbers like 1,3, got %q", p)
		}
		nums = append(nums, n)
	}
	return nums, nil
}
