package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	actors "backprop/driver/actors"
	"backprop/messages"
	"backprop/training"

	"github.com/asynkron/protoactor-go/actor"
)

func main() {
	trainPath := flag.String("train", "", "training set file (required)")
	testPath := flag.String("test", "", "test set file; the training set is split when empty")
	split := flag.Float64("split", 0.7, "share of the training file used for training when -test is empty")
	weightsPath := flag.String("weights", "", "JSON file with the initial weights; random when empty")
	hidden := flag.Int("hidden", 5, "number of hidden nodes")
	eta := flag.Float64("eta", 0.01, "learning rate")
	epochs := flag.Int("epochs", 100, "number of training epochs")
	seed := flag.Int64("seed", 42, "seed for the split and the random weights")
	timeout := flag.Duration("timeout", 10*time.Minute, "time limit for the whole run")
	flag.Parse()

	if *trainPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	msg := &messages.RunPipeline{
		TrainPath:   *trainPath,
		TestPath:    *testPath,
		WeightsPath: *weightsPath,
		SplitRatio:  *split,
		Seed:        *seed,
		HiddenCount: *hidden,
		Config: training.Config{
			Epochs: *epochs,
			Eta:    *eta,
		},
		Timeout: *timeout,
	}

	actorSystem := actor.NewActorSystem()
	rootContext := actorSystem.Root
	pid := rootContext.Spawn(actors.CoordinationProps())
	defer rootContext.Stop(pid)

	reply, err := rootContext.RequestFuture(pid, msg, *timeout).Result()
	if err != nil {
		log.Fatalln("pipeline did not finish:", err)
	}

	switch result := reply.(type) {
	case *messages.PipelineResult:
		ev := result.Evaluation
		fmt.Printf("correct = %d/%d\n", ev.Correct, ev.Total)
		fmt.Printf("accuracy = %0.01f%%\n", ev.Accuracy()*100)
	case *messages.Failed:
		log.Fatalln("pipeline failed:", result.Err)
	default:
		log.Fatalf("unexpected reply %T", reply)
	}
}
