package cmd

import (
	"fmt"
	"log"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/grailbio/base/cmdutil"
	"github.com/grailbio/base/errors"
	"v.io/x/lib/cmdline"
)

const inputHelp = `The input is a BAM file, a SAM file if the pathname ends with ".sam", or
"-" for a BAM stream on the standard input.`

// oneInput checks that argv holds exactly one input argument.
func oneInput(name string, argv []string) (string, error) {
	if len(argv) != 1 {
		return "", errors.E(errors.Invalid, fmt.Sprintf("%s takes one input argument, but got %v", name, argv))
	}
	return argv[0], nil
}

func newCmdFilter() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "filter",
		Short:    "Keep records whose fragment size is within bounds",
		Long:     "Filter writes the records whose absolute template length is in [above, below] to -out, in input order.\n" + inputHelp,
		ArgsName: "input",
	}
	opts := filterOpts{}
	cmd.Flags.Int64Var(&opts.above, "above", 0, "Inclusive lower bound of the fragment size")
	cmd.Flags.Int64Var(&opts.below, "below", -1, "Inclusive upper bound of the fragment size. Negative means no bound")
	cmd.Flags.StringVar(&opts.out, "out", "-", `Output path. "-" writes to the standard output in the input's format.
Otherwise the output is SAM if the path ends with ".sam", and BAM if not`)
	cmd.Flags.IntVar(&opts.parallelism, "parallelism", runtime.NumCPU(), "Number of BAM compression threads")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		arg, err := oneInput("filter", argv)
		if err != nil {
			return err
		}
		return filter(opts, arg, env.Stdin, env.Stdout)
	})
	return cmd
}

func newCmdSummary() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "summary",
		Short:    "Print the min, max, mean and count of fragment sizes",
		Long:     "Summary prints fragment-size statistics of all the records in the input. The mean is a running mean with truncating integer division.\n" + inputHelp,
		ArgsName: "input",
	}
	opts := summaryOpts{}
	cmd.Flags.BoolVar(&opts.min, "min", false, "Print only the minimum")
	cmd.Flags.BoolVar(&opts.max, "max", false, "Print only the maximum")
	cmd.Flags.BoolVar(&opts.mean, "mean", false, "Print only the mean")
	cmd.Flags.BoolVar(&opts.count, "count", false, "Print only the number of records")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		arg, err := oneInput("summary", argv)
		if err != nil {
			return err
		}
		return summary(opts, arg, env.Stdin, env.Stdout)
	})
	return cmd
}

func newCmdHist() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "hist",
		Short:    "Print the histogram of fragment sizes as CSV",
		Long:     "Hist prints one \"size,n\" row for every fragment size in [0, below] found in the input.\n" + inputHelp,
		ArgsName: "input",
	}
	opts := histOpts{}
	cmd.Flags.Int64Var(&opts.below, "below", 1000, "Largest fragment size to count")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		arg, err := oneInput("hist", argv)
		if err != nil {
			return err
		}
		return hist(opts, arg, env.Stdin, env.Stdout)
	})
	return cmd
}

func newCmdSplit() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:  "split",
		Short: "Split the input into one file per fragment-size range",
		Long: `Split writes every record to the output file of the first range that contains
its fragment size, or of every such range with -multi. Records in no range are
dropped. Output files are named {prefix}_{min}to{max}{ext}, where ext is the
extension of the input. The input must be a file.`,
		ArgsName: "input",
	}
	opts := splitOpts{}
	cmd.Flags.StringVar(&opts.ranges, "ranges", "", `Comma-separated list of range bounds, read pairwise.
For example, "20,120,250,300" defines [20,120] and [250,300]`)
	cmd.Flags.StringVar(&opts.prefix, "prefix", "", "Output pathname prefix")
	cmd.Flags.BoolVar(&opts.multi, "multi", false, "Write a record to every range that contains it")
	cmd.Flags.IntVar(&opts.parallelism, "parallelism", runtime.NumCPU(), "Number of BAM compression threads per output")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		arg, err := oneInput("split", argv)
		if err != nil {
			return err
		}
		return split(opts, arg)
	})
	return cmd
}

func newCmdBEDPE() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:  "bedpe",
		Short: "Print one interval per properly paired fragment",
		Long: `Bedpe prints "chrom<TAB>start<TAB>end" for the first read of every proper pair,
where start is the leftmost position of the read and its mate, and end is start
plus the fragment size.
` + inputHelp,
		ArgsName: "input",
	}
	opts := bedpeOpts{}
	cmd.Flags.StringVar(&opts.out, "out", "-", `Output path. "-" is the standard output. A ".gz" suffix compresses the output`)
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		arg, err := oneInput("bedpe", argv)
		if err != nil {
			return err
		}
		return bedpe(opts, arg, env.Stdin, env.Stdout)
	})
	return cmd
}

// ignoreBrokenPipe makes a write to a closed standard output fail with EPIPE
// instead of killing the process, so "bio-fragsize bedpe x.bam | head" exits
// cleanly.
func ignoreBrokenPipe() {
	signal.Ignore(syscall.SIGPIPE)
}

func Run() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)
	ignoreBrokenPipe()
	cmdline.HideGlobalFlagsExcept()
	cmdline.Main(
		&cmdline.Command{
			Name:     "bio-fragsize",
			Short:    "Fragment-size statistics and filtering of paired-end alignments",
			LookPath: false,
			Children: []*cmdline.Command{
				newCmdFilter(),
				newCmdSummary(),
				newCmdHist(),
				newCmdSplit(),
				newCmdBEDPE(),
			},
		})
}
